package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const matchesSchema = `
CREATE TABLE IF NOT EXISTS match_results (
	id           BIGSERIAL PRIMARY KEY,
	room_id      UUID        NOT NULL,
	room_name    TEXT        NOT NULL,
	winner_id    UUID,
	player_count INT         NOT NULL,
	started_at   TIMESTAMPTZ NOT NULL,
	finished_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// MatchResult is one archived game outcome. WinnerID is empty for rooms
// that ended without a winner (disconnect policy).
type MatchResult struct {
	RoomID      string
	RoomName    string
	WinnerID    string
	PlayerCount int
	StartedAt   time.Time
}

// MatchArchive writes finished-game records.
type MatchArchive struct {
	pool *pgxpool.Pool
}

// NewMatchArchive ensures the results table exists.
func NewMatchArchive(ctx context.Context, pool *pgxpool.Pool) (*MatchArchive, error) {
	if _, err := pool.Exec(ctx, matchesSchema); err != nil {
		return nil, fmt.Errorf("creating match_results table: %w", err)
	}
	return &MatchArchive{pool: pool}, nil
}

// Record inserts one finished match.
func (a *MatchArchive) Record(ctx context.Context, result MatchResult) error {
	var winner any
	if result.WinnerID != "" {
		winner = result.WinnerID
	}
	_, err := a.pool.Exec(ctx,
		`INSERT INTO match_results (room_id, room_name, winner_id, player_count, started_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		result.RoomID, result.RoomName, winner, result.PlayerCount, result.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting match result: %w", err)
	}
	return nil
}
