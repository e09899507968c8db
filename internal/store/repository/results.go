// Package repository provides data access for the archive tables.
package repository

import (
	"context"
	"fmt"

	"github.com/akshay23/spurs-blog-mcp-server/internal/extract"
	"github.com/akshay23/spurs-blog-mcp-server/internal/store"
)

// ResultsRepository archives extracted game results.
type ResultsRepository struct {
	db *store.Database
}

// NewResultsRepository creates a repository over db.
func NewResultsRepository(db *store.Database) *ResultsRepository {
	return &ResultsRepository{db: db}
}

// SaveResults upserts one extraction pass. Each pass re-derives everything,
// so replaying the same results is expected and harmless.
func (r *ResultsRepository) SaveResults(ctx context.Context, results []extract.GameResult) error {
	const query = `
INSERT INTO game_results (game_date, opponent, score, result, location)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (game_date, opponent) DO UPDATE SET
	score = EXCLUDED.score,
	result = EXCLUDED.result,
	location = EXCLUDED.location,
	archived_at = now()`

	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive transaction: %w", err)
	}
	defer tx.Rollback()

	for _, result := range results {
		if _, err := tx.ExecContext(ctx, query,
			result.Date, result.Opponent, result.Score, result.Result, result.Location); err != nil {
			return fmt.Errorf("archive result vs %s: %w", result.Opponent, err)
		}
	}

	return tx.Commit()
}

// RecentResults returns the most recently archived results, newest first.
func (r *ResultsRepository) RecentResults(ctx context.Context, limit int) ([]extract.GameResult, error) {
	const query = `
SELECT game_date, opponent, score, result, location
FROM game_results
ORDER BY archived_at DESC
LIMIT $1`

	rows, err := r.db.DB().QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query archived results: %w", err)
	}
	defer rows.Close()

	var results []extract.GameResult
	for rows.Next() {
		var gr extract.GameResult
		if err := rows.Scan(&gr.Date, &gr.Opponent, &gr.Score, &gr.Result, &gr.Location); err != nil {
			return nil, fmt.Errorf("scan archived result: %w", err)
		}
		results = append(results, gr)
	}
	return results, rows.Err()
}
