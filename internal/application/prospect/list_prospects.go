package prospect

import (
	"context"
	"fmt"
	"time"

	domain "github.com/mhkarimi/prospect-import/internal/domain/prospect"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type ListProspectsInput struct {
	OwnerID  int64
	Page     int
	PageSize int
}

type ProspectOutput struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListProspectsOutput is one page of prospects.
type ListProspectsOutput struct {
	Prospects []ProspectOutput `json:"prospects"`
	Size      int              `json:"size"`
	Total     int64            `json:"total"`
}

type ListProspects interface {
	Execute(ctx context.Context, in ListProspectsInput) (ListProspectsOutput, error)
}

type listProspects struct {
	repo domain.ProspectQueryRepository
}

func NewListProspects(repo domain.ProspectQueryRepository) ListProspects {
	return &listProspects{repo: repo}
}

func (uc *listProspects) Execute(ctx context.Context, in ListProspectsInput) (ListProspectsOutput, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}

	pageSize := in.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	rows, total, err := uc.repo.ListByUser(ctx, in.OwnerID, (page-1)*pageSize, pageSize)
	if err != nil {
		return ListProspectsOutput{}, fmt.Errorf("%w: %v", ErrListProspects, err)
	}

	prospects := make([]ProspectOutput, 0, len(rows))
	for _, row := range rows {
		prospects = append(prospects, ProspectOutput{
			ID:        row.ID,
			Email:     row.Email,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return ListProspectsOutput{
		Prospects: prospects,
		Size:      len(prospects),
		Total:     total,
	}, nil
}
