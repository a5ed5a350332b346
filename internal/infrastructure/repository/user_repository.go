package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mhkarimi/prospect-import/internal/domain/prospect"
	"github.com/mhkarimi/prospect-import/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByAPIToken(ctx context.Context, token string) (*domain.User, error) {
	var row models.User

	err := r.db.WithContext(ctx).
		Where("api_token = ?", token).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by api token: %w", err)
	}

	return &domain.User{ID: row.ID, Email: row.Email}, nil
}
