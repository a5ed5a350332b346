package prospect

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"
	domain "github.com/mhkarimi/prospect-import/internal/domain/prospect"
)

const DefaultMaxFileSize = 200 * 1024 * 1024

var defaultAllowedMediaTypes = []string{"text/csv", "text/plain"}

type ImportProspectFileInput struct {
	OwnerID        int64
	FileName       string
	ContentType    string
	Contents       []byte
	EmailIndex     int
	FirstNameIndex *int
	LastNameIndex  *int
	HasHeaders     bool
	Force          bool
}

type ImportProspectFileOutput struct {
	RequestID string            `json:"request_id"`
	Links     ProspectFileLinks `json:"links"`
}

type ProspectFileLinks struct {
	FileStatus string `json:"file_status"`
}

type ImportProspectFile interface {
	Execute(ctx context.Context, in ImportProspectFileInput) (ImportProspectFileOutput, error)
}

type prospectFileCreator interface {
	Create(ctx context.Context, file domain.ProspectFile) (*domain.ProspectFile, error)
	FindByDigest(ctx context.Context, digest string) (*domain.ProspectFile, error)
	FindByDigestAndMapping(ctx context.Context, digest string, mapping domain.ColumnMapping) (*domain.ProspectFile, error)
}

type blobWriter interface {
	Save(ctx context.Context, contents []byte) (string, error)
}

type IntakeConfig struct {
	MaxFileSize       int64
	AllowedMediaTypes []string
}

type importProspectFile struct {
	files prospectFileCreator
	blobs blobWriter
	cfg   IntakeConfig
}

func NewImportProspectFile(files prospectFileCreator, blobs blobWriter, cfg IntakeConfig) ImportProspectFile {
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
	if len(cfg.AllowedMediaTypes) == 0 {
		cfg.AllowedMediaTypes = defaultAllowedMediaTypes
	}

	return &importProspectFile{files: files, blobs: blobs, cfg: cfg}
}

func (uc *importProspectFile) Execute(ctx context.Context, in ImportProspectFileInput) (ImportProspectFileOutput, error) {
	if !uc.allowedMediaType(in.ContentType) {
		return ImportProspectFileOutput{}, ErrUnsupportedMediaType
	}
	if int64(len(in.Contents)) > uc.cfg.MaxFileSize {
		return ImportProspectFileOutput{}, ErrFileTooLarge
	}
	if in.EmailIndex < 1 {
		return ImportProspectFileOutput{}, ErrInvalidMapping
	}

	mapping := domain.ColumnMapping{
		EmailIndex:     in.EmailIndex,
		FirstNameIndex: normalizeIndex(in.FirstNameIndex),
		LastNameIndex:  normalizeIndex(in.LastNameIndex),
		HasHeaders:     in.HasHeaders,
	}

	sum := sha512.Sum512(in.Contents)
	digest := hex.EncodeToString(sum[:])

	// Exact resubmission: same bytes, same column indices. No job, no
	// write. This lookup is only the fast path; the unique index behind
	// Create decides races between concurrent identical uploads.
	duplicate, err := uc.files.FindByDigestAndMapping(ctx, digest, mapping)
	if err != nil {
		return ImportProspectFileOutput{}, fmt.Errorf("%w: %v", ErrCreateProspectFile, err)
	}
	if duplicate != nil {
		return ImportProspectFileOutput{}, ErrDuplicateFile
	}

	// Same bytes under a different mapping reuse the stored blob.
	existing, err := uc.files.FindByDigest(ctx, digest)
	if err != nil {
		return ImportProspectFileOutput{}, fmt.Errorf("%w: %v", ErrCreateProspectFile, err)
	}

	var filePath string
	if existing != nil {
		filePath = existing.FilePath
	} else {
		filePath, err = uc.blobs.Save(ctx, in.Contents)
		if err != nil {
			return ImportProspectFileOutput{}, fmt.Errorf("%w: %v", ErrStoreProspectFile, err)
		}
	}

	created, err := uc.files.Create(ctx, domain.ProspectFile{
		RequestID:    uuid.NewString(),
		FileName:     in.FileName,
		FileSize:     int64(len(in.Contents)),
		Sha512Digest: digest,
		FilePath:     filePath,
		Mapping:      mapping,
		Force:        in.Force,
		UserID:       in.OwnerID,
		Status:       domain.StatusScheduled,
		UploadedAt:   time.Now(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateFile) {
			return ImportProspectFileOutput{}, ErrDuplicateFile
		}
		return ImportProspectFileOutput{}, fmt.Errorf("%w: %v", ErrCreateProspectFile, err)
	}

	return ImportProspectFileOutput{
		RequestID: created.RequestID,
		Links: ProspectFileLinks{
			FileStatus: fmt.Sprintf("/api/prospect_files/%s/progress", created.RequestID),
		},
	}, nil
}

func (uc *importProspectFile) allowedMediaType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	mediaType = strings.ToLower(mediaType)

	for _, allowed := range uc.cfg.AllowedMediaTypes {
		if mediaType == allowed {
			return true
		}
	}
	return false
}

// Clients send optional indices as any integer; values below 1 mean the
// column is absent.
func normalizeIndex(index *int) *int {
	if index == nil || *index < 1 {
		return nil
	}
	return index
}
