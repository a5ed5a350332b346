package prospect

import "time"

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusFailed     Status = "failed"
)

// ColumnMapping locates prospect fields inside a CSV row. Indices are
// 1-based as supplied by clients; nil means the column is absent.
type ColumnMapping struct {
	EmailIndex     int
	FirstNameIndex *int
	LastNameIndex  *int
	HasHeaders     bool
}

// SameIndices reports whether two mappings address the same columns.
// HasHeaders is presentation, not identity, so it does not participate.
func (m ColumnMapping) SameIndices(other ColumnMapping) bool {
	return m.EmailIndex == other.EmailIndex &&
		sameIndex(m.FirstNameIndex, other.FirstNameIndex) &&
		sameIndex(m.LastNameIndex, other.LastNameIndex)
}

func sameIndex(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ProspectFile is one request to extract and persist prospects from a
// specific uploaded file with a specific column mapping. Status only
// ever advances scheduled -> in_progress -> done|failed; rows_total and
// rows_done are written exactly once, together with the done status.
type ProspectFile struct {
	ID           int64
	RequestID    string
	FileName     string
	FileSize     int64
	Sha512Digest string
	FilePath     string
	Mapping      ColumnMapping
	Force        bool
	RowsTotal    int64
	RowsDone     int64
	UserID       int64
	Status       Status
	ErrorMessage string
	UploadedAt   time.Time
}
