package espn

import (
	"log/slog"
	"strings"
	"time"

	"match-tracker-service/internal/domain"
	"match-tracker-service/internal/logging"
	"match-tracker-service/internal/timeutil"
)

// mapScoreboard normalizes a raw scoreboard payload into fixtures.
// Malformed individual events are logged and skipped; one bad event never
// aborts the batch. The result is deduplicated by event ID.
func mapScoreboard(payload scoreboardResponse, leagueCode string, loc *time.Location, logger *slog.Logger) []domain.Fixture {
	leagueName := "Unknown League"
	if len(payload.Leagues) > 0 && payload.Leagues[0].Name != "" {
		leagueName = payload.Leagues[0].Name
	}

	fixtures := make([]domain.Fixture, 0, len(payload.Events))
	for _, event := range payload.Events {
		fixture, ok := mapEvent(event, leagueName, leagueCode, loc, logger)
		if !ok {
			continue
		}
		fixtures = append(fixtures, fixture)
	}

	return domain.Dedupe(fixtures)
}

func mapEvent(event eventResponse, leagueName, leagueCode string, loc *time.Location, logger *slog.Logger) (domain.Fixture, bool) {
	if event.ID == "" {
		logging.Warn(logger, "skipping event without id", logging.FieldLeague, leagueCode)
		return domain.Fixture{}, false
	}
	if len(event.Competitions) == 0 {
		logging.Warn(logger, "skipping event without competition", logging.FieldMatchID, event.ID)
		return domain.Fixture{}, false
	}

	// The feed always carries exactly one relevant competition per event.
	comp := event.Competitions[0]
	localTime, kickoff := timeutil.ParseKickoff(comp.Date, loc)

	home, homeOK := findCompetitor(comp.Competitors, roleHome)
	away, awayOK := findCompetitor(comp.Competitors, roleAway)
	if !homeOK || !awayOK {
		logging.Warn(logger, "skipping event with missing competitor role", logging.FieldMatchID, event.ID)
		return domain.Fixture{}, false
	}

	utcTime := timeutil.UnknownTime
	if !kickoff.IsZero() {
		utcTime = kickoff.Format(timeutil.ClockLayout)
	}

	return domain.Fixture{
		ID:         event.ID,
		League:     leagueName,
		LeagueCode: leagueCode,
		Home:       home.Team.DisplayName,
		Away:       away.Team.DisplayName,
		Kickoff:    kickoff,
		LocalTime:  localTime,
		UTCTime:    utcTime,
		Status:     domain.FixtureStatus(strings.ToUpper(event.Status.Type.Name)),
		Completed:  event.Status.Type.Completed,
		Score: domain.Score{
			Home: int(home.Score),
			Away: int(away.Score),
		},
	}, true
}

func findCompetitor(competitors []competitorResponse, role string) (competitorResponse, bool) {
	for _, c := range competitors {
		if strings.EqualFold(c.HomeAway, role) {
			return c, true
		}
	}
	return competitorResponse{}, false
}
