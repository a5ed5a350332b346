package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	domain "github.com/mhkarimi/prospect-import/internal/domain/prospect"
)

const mergeForceSQL = `
INSERT INTO prospects (user_id, email, first_name, last_name, created_at, updated_at)
VALUES ($1, $2, $3, $4, NOW(), NOW())
ON CONFLICT (user_id, email) DO UPDATE
  SET first_name = EXCLUDED.first_name,
      last_name = EXCLUDED.last_name,
      updated_at = NOW()
`

const mergeSkipSQL = `
INSERT INTO prospects (user_id, email, first_name, last_name, created_at, updated_at)
VALUES ($1, $2, $3, $4, NOW(), NOW())
ON CONFLICT (user_id, email) DO NOTHING
`

type ProspectMergeRepository struct {
	pool *pgxpool.Pool
}

func NewProspectMergeRepository(pool *pgxpool.Pool) *ProspectMergeRepository {
	return &ProspectMergeRepository{pool: pool}
}

// Merge writes candidates against the (user_id, email) unique index and
// returns the number of rows actually created or updated. The conflict
// clause makes the existence check and the write a single atomic
// statement, so racing imports for the same email resolve inside the
// database instead of in application code. Without force an existing
// email inserts nothing and does not count.
func (r *ProspectMergeRepository) Merge(ctx context.Context, userID int64, candidates []domain.Candidate, force bool) (int64, error) {
	if len(candidates) == 0 {
		return 0, nil
	}

	sql := mergeSkipSQL
	if force {
		sql = mergeForceSQL
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, candidate := range candidates {
		batch.Queue(sql, userID, candidate.Email, candidate.FirstName, candidate.LastName)
	}

	results := tx.SendBatch(ctx, batch)

	var written int64
	for range candidates {
		tag, err := results.Exec()
		if err != nil {
			results.Close()
			return 0, fmt.Errorf("merge prospect: %w", err)
		}
		written += tag.RowsAffected()
	}

	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("close merge batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit merge: %w", err)
	}

	return written, nil
}
