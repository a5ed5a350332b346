package models

import "time"

// ProspectFile rows are additionally guarded by a unique expression
// index on (sha512_digest, email_index, COALESCE(first_name_index, 0),
// COALESCE(last_name_index, 0)); gorm tags cannot express it, so it
// lives in the schema.
type ProspectFile struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	RequestID      string  `gorm:"type:uuid;not null;uniqueIndex"`
	FileName       string  `gorm:"type:text;not null"`
	FileSize       int64   `gorm:"not null"`
	Sha512Digest   string  `gorm:"type:text;not null;index"`
	FilePath       string  `gorm:"type:text;not null"`
	EmailIndex     int     `gorm:"not null"`
	FirstNameIndex *int
	LastNameIndex  *int
	HasHeaders     bool    `gorm:"not null;default:false"`
	Force          bool    `gorm:"not null;default:false"`
	RowsTotal      int64   `gorm:"not null;default:0"`
	RowsDone       int64   `gorm:"not null;default:0"`
	Status         string  `gorm:"type:text;not null"`
	ErrorMessage   *string `gorm:"type:text"`
	StartedAt      *time.Time
	FinishedAt     *time.Time
	UserID         int64     `gorm:"not null;index"`
	UploadedAt     time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt      time.Time
}

func (ProspectFile) TableName() string {
	return "prospect_files"
}
