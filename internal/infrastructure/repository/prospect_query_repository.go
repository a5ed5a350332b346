package repository

import (
	"context"
	"fmt"

	domain "github.com/mhkarimi/prospect-import/internal/domain/prospect"
	"github.com/mhkarimi/prospect-import/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type ProspectQueryRepository struct {
	db *gorm.DB
}

func NewProspectQueryRepository(db *gorm.DB) *ProspectQueryRepository {
	return &ProspectQueryRepository{db: db}
}

func (r *ProspectQueryRepository) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]domain.Prospect, int64, error) {
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.Prospect{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count prospects: %w", err)
	}

	var rows []models.Prospect
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list prospects: %w", err)
	}

	prospects := make([]domain.Prospect, 0, len(rows))
	for _, row := range rows {
		prospects = append(prospects, domain.Prospect{
			ID:        row.ID,
			UserID:    row.UserID,
			Email:     row.Email,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return prospects, total, nil
}
