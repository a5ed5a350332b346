package prospect

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	domain "github.com/mhkarimi/prospect-import/internal/domain/prospect"
)

var requestIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

type TrackImportProgressInput struct {
	RequestID string
	OwnerID   int64
}

// TrackImportProgressOutput is a union keyed by completion: a done file
// reports row counts, anything earlier (or failed) reports only status.
type TrackImportProgressOutput struct {
	Status string `json:"status,omitempty"`
	Total  *int64 `json:"total,omitempty"`
	Done   *int64 `json:"done,omitempty"`
}

type TrackImportProgress interface {
	Execute(ctx context.Context, in TrackImportProgressInput) (TrackImportProgressOutput, error)
}

type prospectFileFinder interface {
	GetByRequestID(ctx context.Context, requestID string, userID int64) (*domain.ProspectFile, error)
}

type trackImportProgress struct {
	files prospectFileFinder
}

func NewTrackImportProgress(files prospectFileFinder) TrackImportProgress {
	return &trackImportProgress{files: files}
}

func (uc *trackImportProgress) Execute(ctx context.Context, in TrackImportProgressInput) (TrackImportProgressOutput, error) {
	if !requestIDPattern.MatchString(in.RequestID) {
		return TrackImportProgressOutput{}, ErrInvalidRequestID
	}

	file, err := uc.files.GetByRequestID(ctx, in.RequestID, in.OwnerID)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			return TrackImportProgressOutput{}, ErrFileNotFound
		}
		return TrackImportProgressOutput{}, fmt.Errorf("%w: %v", ErrTrackImportProgress, err)
	}

	if file.Status == domain.StatusDone {
		total := file.RowsTotal
		done := file.RowsDone
		return TrackImportProgressOutput{Total: &total, Done: &done}, nil
	}

	return TrackImportProgressOutput{Status: string(file.Status)}, nil
}
