package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/mhkarimi/prospect-import/internal/infrastructure/repository"
)

func TestProspectQueryRepositoryIntegration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.Exec(prospectsSchema).Error; err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if err := db.Exec("DELETE FROM prospects WHERE user_id = ?", 77).Error; err != nil {
		t.Fatalf("failed to cleanup prospects: %v", err)
	}

	for i := 0; i < 5; i++ {
		err := db.Exec(
			"INSERT INTO prospects (user_id, email) VALUES (?, ?)",
			77, fmt.Sprintf("p%d@example.com", i),
		).Error
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	repo := repository.NewProspectQueryRepository(db)

	page, total, err := repo.ListByUser(ctx, 77, 0, 3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(page) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(page))
	}

	rest, _, err := repo.ListByUser(ctx, 77, 3, 3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rest) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rest))
	}

	none, total, err := repo.ListByUser(ctx, 78, 0, 3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 || len(none) != 0 {
		t.Fatalf("expected empty result for other owner, got %d/%d", len(none), total)
	}
}
