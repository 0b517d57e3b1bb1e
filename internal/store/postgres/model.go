package postgres

import (
	"time"

	"match-tracker-service/internal/domain"
)

type trackedTableModel struct {
	MatchID    string    `db:"match_id"`
	LeagueCode string    `db:"league_code"`
	Home       string    `db:"home"`
	Away       string    `db:"away"`
	KickoffAt  time.Time `db:"kickoff_at"`
	CreatedAt  time.Time `db:"created_at"`
}

func (m trackedTableModel) toDomain() domain.TrackedFixture {
	return domain.TrackedFixture{
		MatchID:    m.MatchID,
		LeagueCode: m.LeagueCode,
		Home:       m.Home,
		Away:       m.Away,
		Kickoff:    m.KickoffAt.UTC(),
	}
}
