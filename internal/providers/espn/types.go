package espn

import (
	"bytes"
	"encoding/json"
	"strconv"
)

const providerName = "espn"

// Competitor roles as reported by the feed.
const (
	roleHome = "home"
	roleAway = "away"
)

type scoreboardResponse struct {
	Leagues []leagueResponse `json:"leagues"`
	Events  []eventResponse  `json:"events"`
}

type leagueResponse struct {
	Name string `json:"name"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Status       statusResponse        `json:"status"`
	Competitions []competitionResponse `json:"competitions"`
}

type statusResponse struct {
	Type statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type competitionResponse struct {
	Date        string               `json:"date"`
	Competitors []competitorResponse `json:"competitors"`
}

type competitorResponse struct {
	HomeAway string       `json:"homeAway"`
	Team     teamResponse `json:"team"`
	Score    flexScore    `json:"score"`
}

type teamResponse struct {
	DisplayName string `json:"displayName"`
}

// flexScore tolerates the feed emitting scores as strings, numbers, or null,
// defaulting to 0 for anything unparseable.
type flexScore int

func (s *flexScore) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			*s = 0
			return nil
		}
		*s = flexScore(parsed)
		return nil
	}

	var parsed int
	if err := json.Unmarshal(data, &parsed); err != nil {
		*s = 0
		return nil
	}
	if parsed < 0 {
		parsed = 0
	}
	*s = flexScore(parsed)
	return nil
}
