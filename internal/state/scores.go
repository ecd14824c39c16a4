package state

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// BotScore is one row of the accumulated leaderboard.
type BotScore struct {
	Bot     string
	Points  int
	Matches int
}

// ScoreStore records per-bot match results.
type ScoreStore struct {
	db *DB
}

// NewScoreStore creates the store and ensures the schema exists.
func NewScoreStore(ctx context.Context, database *DB) (*ScoreStore, error) {
	s := &ScoreStore{db: database}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ScoreStore) ensureSchema(ctx context.Context) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS match_results (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	bot       TEXT NOT NULL,
	points    INTEGER NOT NULL,
	played_at INTEGER NOT NULL
);
`
	const createIndex = `CREATE INDEX IF NOT EXISTS match_results_bot ON match_results(bot);`

	if _, err := s.db.Raw().ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("scores: ensure schema: %w", err)
	}
	if _, err := s.db.Raw().ExecContext(ctx, createIndex); err != nil {
		return fmt.Errorf("scores: ensure schema: %w", err)
	}
	return nil
}

// RecordMatch stores one finished match: points per bot, index-aligned.
// All rows land in a single transaction so a match is never half recorded.
func (s *ScoreStore) RecordMatch(ctx context.Context, bots []string, points []int) error {
	if len(bots) != len(points) {
		return fmt.Errorf("scores: %d bots but %d point entries", len(bots), len(points))
	}

	playedAt := time.Now().Unix()
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		const insert = `INSERT INTO match_results (bot, points, played_at) VALUES (?, ?, ?)`
		for i, bot := range bots {
			if _, err := tx.ExecContext(ctx, insert, bot, points[i], playedAt); err != nil {
				return fmt.Errorf("scores: insert result for %s: %w", bot, err)
			}
		}
		return nil
	})
}

// Totals returns the leaderboard: total points and match count per bot,
// best first.
func (s *ScoreStore) Totals(ctx context.Context) ([]BotScore, error) {
	const q = `
SELECT bot, SUM(points), COUNT(*)
FROM match_results
GROUP BY bot
ORDER BY SUM(points) DESC, bot ASC
`
	rows, err := s.db.Raw().QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("scores: query totals: %w", err)
	}
	defer rows.Close()

	var out []BotScore
	for rows.Next() {
		var bs BotScore
		if err := rows.Scan(&bs.Bot, &bs.Points, &bs.Matches); err != nil {
			return nil, fmt.Errorf("scores: scan totals: %w", err)
		}
		out = append(out, bs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores: iterate totals: %w", err)
	}
	return out, nil
}
