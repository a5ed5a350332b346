package prospect

import "errors"

var (
	ErrInvalidMapping       = errors.New("invalid column mapping")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrDuplicateFile        = errors.New("file already processed with the same column mapping")
	ErrInvalidRequestID     = errors.New("invalid request id")
	ErrFileNotFound         = errors.New("prospect file not found")
	ErrCreateProspectFile   = errors.New("failed to register prospect file")
	ErrStoreProspectFile    = errors.New("failed to store uploaded file")
	ErrTrackImportProgress  = errors.New("failed to track import progress")
	ErrListProspects        = errors.New("failed to list prospects")
)
