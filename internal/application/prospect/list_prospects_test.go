package prospect_test

import (
	"context"
	"testing"

	app "github.com/mhkarimi/prospect-import/internal/application/prospect"
	domain "github.com/mhkarimi/prospect-import/internal/domain/prospect"
)

type fakeQueryRepo struct {
	rows   []domain.Prospect
	total  int64
	offset int
	limit  int
}

func (f *fakeQueryRepo) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]domain.Prospect, int64, error) {
	f.offset = offset
	f.limit = limit
	return f.rows, f.total, nil
}

func TestListProspectsDefaults(t *testing.T) {
	t.Parallel()

	repo := &fakeQueryRepo{
		rows:  []domain.Prospect{{ID: 1, Email: "alice@example.com"}},
		total: 12,
	}
	uc := app.NewListProspects(repo)

	out, err := uc.Execute(context.Background(), app.ListProspectsInput{OwnerID: 7})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if repo.offset != 0 || repo.limit != 50 {
		t.Fatalf("unexpected paging: offset=%d limit=%d", repo.offset, repo.limit)
	}
	if out.Size != 1 {
		t.Fatalf("expected size 1, got %d", out.Size)
	}
	if out.Total != 12 {
		t.Fatalf("expected total 12, got %d", out.Total)
	}
}

func TestListProspectsPagingAndCap(t *testing.T) {
	t.Parallel()

	repo := &fakeQueryRepo{}
	uc := app.NewListProspects(repo)

	if _, err := uc.Execute(context.Background(), app.ListProspectsInput{OwnerID: 7, Page: 3, PageSize: 500}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if repo.limit != 200 {
		t.Fatalf("expected page size capped at 200, got %d", repo.limit)
	}
	if repo.offset != 400 {
		t.Fatalf("expected offset 400, got %d", repo.offset)
	}
}
