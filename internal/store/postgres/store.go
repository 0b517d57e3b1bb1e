package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"match-tracker-service/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS tracked_fixtures (
	match_id    TEXT PRIMARY KEY,
	league_code TEXT NOT NULL,
	home        TEXT NOT NULL,
	away        TEXT NOT NULL,
	kickoff_at  TIMESTAMPTZ NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// TrackedStore persists tracked fixtures in Postgres. Insert-if-absent is
// expressed as ON CONFLICT DO NOTHING so overlapping discovery runs stay
// idempotent without locks.
type TrackedStore struct {
	db *sqlx.DB
}

// Open connects to Postgres, verifies the connection, and ensures the
// tracked_fixtures table exists.
func Open(ctx context.Context, dsn string) (*TrackedStore, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	store := NewTrackedStore(db)
	if err := store.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewTrackedStore wraps an existing connection pool.
func NewTrackedStore(db *sqlx.DB) *TrackedStore {
	return &TrackedStore{db: db}
}

func (s *TrackedStore) ensureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure tracked_fixtures schema: %w", err)
	}
	return nil
}

// List returns every tracked fixture.
func (s *TrackedStore) List(ctx context.Context) ([]domain.TrackedFixture, error) {
	var rows []trackedTableModel
	query := `SELECT match_id, league_code, home, away, kickoff_at, created_at
		FROM tracked_fixtures ORDER BY kickoff_at, match_id`
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select tracked fixtures: %w", err)
	}

	out := make([]domain.TrackedFixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// InsertIfAbsent stores the fixture unless its match ID is already tracked.
func (s *TrackedStore) InsertIfAbsent(ctx context.Context, fixture domain.TrackedFixture) error {
	query := `INSERT INTO tracked_fixtures (match_id, league_code, home, away, kickoff_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (match_id) DO NOTHING`
	if _, err := s.db.ExecContext(ctx, query,
		fixture.MatchID, fixture.LeagueCode, fixture.Home, fixture.Away, fixture.Kickoff,
	); err != nil {
		return fmt.Errorf("insert tracked fixture %s: %w", fixture.MatchID, err)
	}
	return nil
}

// Delete removes the fixture; unknown IDs are a no-op.
func (s *TrackedStore) Delete(ctx context.Context, matchID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tracked_fixtures WHERE match_id = $1`, matchID); err != nil {
		return fmt.Errorf("delete tracked fixture %s: %w", matchID, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *TrackedStore) Close() error {
	return s.db.Close()
}
