package prospect

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	domain "github.com/mhkarimi/prospect-import/internal/domain/prospect"
)

type BlobSource interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

type importWorkerFileRepo interface {
	ClaimNext(ctx context.Context) (*domain.ProspectFile, error)
	Complete(ctx context.Context, fileID, rowsTotal, rowsDone int64) error
	Fail(ctx context.Context, fileID int64, reason string) error
}

type prospectMerger interface {
	Merge(ctx context.Context, userID int64, candidates []domain.Candidate, force bool) (int64, error)
}

type ImportWorkerConfig struct {
	Workers      int
	PollInterval time.Duration
	MaxRows      int64
}

// ImportWorker drains scheduled prospect files. Claiming a file moves it
// to in_progress; extraction and merge run off the intake request path,
// and the terminal update writes rows_total, rows_done and the done
// status together. Any fault moves the file to failed with a reason, so
// no file is left non-terminal by a processing error.
type ImportWorker struct {
	files  importWorkerFileRepo
	blobs  BlobSource
	merger prospectMerger
	cfg    ImportWorkerConfig

	once sync.Once
}

func NewImportWorker(files importWorkerFileRepo, blobs BlobSource, merger prospectMerger, cfg ImportWorkerConfig) *ImportWorker {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = DefaultMaxRows
	}

	return &ImportWorker{
		files:  files,
		blobs:  blobs,
		merger: merger,
		cfg:    cfg,
	}
}

func (w *ImportWorker) Start(ctx context.Context) {
	w.once.Do(func() {
		for i := 0; i < w.cfg.Workers; i++ {
			go w.workerLoop(ctx)
		}
	})
}

func (w *ImportWorker) workerLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		file, err := w.files.ClaimNext(ctx)
		if err != nil {
			log.Printf("claim next prospect file failed: %v", err)
			if !sleepWithContext(ctx, w.cfg.PollInterval) {
				return
			}
			continue
		}

		if file == nil {
			if !sleepWithContext(ctx, w.cfg.PollInterval) {
				return
			}
			continue
		}

		if err := w.ProcessFile(ctx, *file); err != nil {
			log.Printf("process prospect file %s failed: %v", file.RequestID, err)
		}
	}
}

// ProcessFile runs extraction and merge for an already claimed file.
func (w *ImportWorker) ProcessFile(ctx context.Context, file domain.ProspectFile) error {
	reader, err := w.blobs.Open(ctx, file.FilePath)
	if err != nil {
		return w.onProcessingError(ctx, file, fmt.Errorf("open stored file: %w", err))
	}
	defer reader.Close()

	result, err := ExtractCandidates(reader, file.Mapping, w.cfg.MaxRows)
	if err != nil {
		return w.onProcessingError(ctx, file, fmt.Errorf("extract candidates: %w", err))
	}

	candidates := make([]domain.Candidate, 0, len(result.Candidates))
	for candidate := range result.Candidates {
		candidates = append(candidates, candidate)
	}

	rowsDone, err := w.merger.Merge(ctx, file.UserID, candidates, file.Force)
	if err != nil {
		return w.onProcessingError(ctx, file, fmt.Errorf("merge candidates: %w", err))
	}

	if err := w.files.Complete(ctx, file.ID, result.LinesRead, rowsDone); err != nil {
		return w.onProcessingError(ctx, file, fmt.Errorf("complete prospect file: %w", err))
	}

	return nil
}

func (w *ImportWorker) onProcessingError(ctx context.Context, file domain.ProspectFile, err error) error {
	if failErr := w.files.Fail(ctx, file.ID, truncateReason(err.Error())); failErr != nil {
		return fmt.Errorf("%v; fail update failed: %w", err, failErr)
	}
	return err
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func truncateReason(reason string) string {
	const maxLen = 1000
	reason = strings.TrimSpace(reason)
	if len(reason) <= maxLen {
		return reason
	}
	return reason[:maxLen]
}
