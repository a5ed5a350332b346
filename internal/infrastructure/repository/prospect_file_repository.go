package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	domain "github.com/mhkarimi/prospect-import/internal/domain/prospect"
	"github.com/mhkarimi/prospect-import/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type ProspectFileRepository struct {
	db *gorm.DB
}

func NewProspectFileRepository(db *gorm.DB) *ProspectFileRepository {
	return &ProspectFileRepository{db: db}
}

// Create inserts the file against the unique (digest, mapping) index.
// A concurrent identical upload loses the insert and gets
// domain.ErrDuplicateFile, so exactly one job row exists per
// (content, mapping) pair no matter how requests interleave.
func (r *ProspectFileRepository) Create(ctx context.Context, file domain.ProspectFile) (*domain.ProspectFile, error) {
	row := models.ProspectFile{
		RequestID:      file.RequestID,
		FileName:       file.FileName,
		FileSize:       file.FileSize,
		Sha512Digest:   file.Sha512Digest,
		FilePath:       file.FilePath,
		EmailIndex:     file.Mapping.EmailIndex,
		FirstNameIndex: file.Mapping.FirstNameIndex,
		LastNameIndex:  file.Mapping.LastNameIndex,
		HasHeaders:     file.Mapping.HasHeaders,
		Force:          file.Force,
		Status:         string(file.Status),
		UserID:         file.UserID,
		UploadedAt:     file.UploadedAt,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicateFile
		}
		return nil, fmt.Errorf("create prospect file: %w", err)
	}

	return toDomainFile(row), nil
}

func (r *ProspectFileRepository) FindByDigest(ctx context.Context, digest string) (*domain.ProspectFile, error) {
	var row models.ProspectFile

	err := r.db.WithContext(ctx).
		Where("sha512_digest = ?", digest).
		Order("id asc").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find prospect file by digest: %w", err)
	}

	return toDomainFile(row), nil
}

func (r *ProspectFileRepository) FindByDigestAndMapping(ctx context.Context, digest string, mapping domain.ColumnMapping) (*domain.ProspectFile, error) {
	var row models.ProspectFile

	err := r.db.WithContext(ctx).
		Where("sha512_digest = ?", digest).
		Where("email_index = ?", mapping.EmailIndex).
		Where("first_name_index IS NOT DISTINCT FROM ?", mapping.FirstNameIndex).
		Where("last_name_index IS NOT DISTINCT FROM ?", mapping.LastNameIndex).
		Order("id asc").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find prospect file by digest and mapping: %w", err)
	}

	return toDomainFile(row), nil
}

func (r *ProspectFileRepository) GetByRequestID(ctx context.Context, requestID string, userID int64) (*domain.ProspectFile, error) {
	var row models.ProspectFile

	err := r.db.WithContext(ctx).
		Where("request_id = ? AND user_id = ?", requestID, userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("get prospect file by request id: %w", err)
	}

	return toDomainFile(row), nil
}

// ClaimNext atomically moves the oldest scheduled file to in_progress.
// SKIP LOCKED keeps concurrent workers from claiming the same row.
// Returns nil when nothing is scheduled.
func (r *ProspectFileRepository) ClaimNext(ctx context.Context) (*domain.ProspectFile, error) {
	var row models.ProspectFile

	result := r.db.WithContext(ctx).Raw(`
UPDATE prospect_files
SET status = ?, started_at = NOW(), updated_at = NOW()
WHERE id = (
    SELECT id FROM prospect_files
    WHERE status = ?
    ORDER BY id
    FOR UPDATE SKIP LOCKED
    LIMIT 1
)
RETURNING *
`, string(domain.StatusInProgress), string(domain.StatusScheduled)).Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("claim next prospect file: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return toDomainFile(row), nil
}

// Complete writes the row counts and the done status in one update.
func (r *ProspectFileRepository) Complete(ctx context.Context, fileID, rowsTotal, rowsDone int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.ProspectFile{}).
		Where("id = ? AND status = ?", fileID, string(domain.StatusInProgress)).
		Updates(map[string]any{
			"status":      string(domain.StatusDone),
			"rows_total":  rowsTotal,
			"rows_done":   rowsDone,
			"finished_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("complete prospect file: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("complete prospect file %d: not in progress", fileID)
	}
	return nil
}

func (r *ProspectFileRepository) Fail(ctx context.Context, fileID int64, reason string) error {
	result := r.db.WithContext(ctx).
		Model(&models.ProspectFile{}).
		Where("id = ? AND status IN ?", fileID, []string{
			string(domain.StatusScheduled),
			string(domain.StatusInProgress),
		}).
		Updates(map[string]any{
			"status":        string(domain.StatusFailed),
			"error_message": reason,
			"finished_at":   time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("fail prospect file: %w", result.Error)
	}
	return nil
}

func toDomainFile(row models.ProspectFile) *domain.ProspectFile {
	file := &domain.ProspectFile{
		ID:           row.ID,
		RequestID:    row.RequestID,
		FileName:     row.FileName,
		FileSize:     row.FileSize,
		Sha512Digest: row.Sha512Digest,
		FilePath:     row.FilePath,
		Mapping: domain.ColumnMapping{
			EmailIndex:     row.EmailIndex,
			FirstNameIndex: row.FirstNameIndex,
			LastNameIndex:  row.LastNameIndex,
			HasHeaders:     row.HasHeaders,
		},
		Force:      row.Force,
		RowsTotal:  row.RowsTotal,
		RowsDone:   row.RowsDone,
		UserID:     row.UserID,
		Status:     domain.Status(row.Status),
		UploadedAt: row.UploadedAt,
	}
	if row.ErrorMessage != nil {
		file.ErrorMessage = *row.ErrorMessage
	}
	return file
}
