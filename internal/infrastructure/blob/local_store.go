// Package blob stores uploaded CSV bytes on local disk. Files are
// written once under a generated name; the returned locator is what the
// prospect_files row records and what the worker opens later.
package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type LocalStore struct {
	BaseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if baseDir == "" {
		baseDir = "."
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir %s: %w", baseDir, err)
	}
	return &LocalStore{BaseDir: baseDir}, nil
}

func (s *LocalStore) Save(ctx context.Context, contents []byte) (string, error) {
	_ = ctx

	name := uuid.NewString() + ".csv"
	path := filepath.Join(s.BaseDir, name)

	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return "", fmt.Errorf("write file %s: %w", path, err)
	}
	return name, nil
}

func (s *LocalStore) Open(ctx context.Context, locator string) (io.ReadCloser, error) {
	_ = ctx

	path := locator
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.BaseDir, locator)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}
	return file, nil
}
