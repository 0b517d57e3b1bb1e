package teststubs

import (
	"context"
	"sync"

	"match-tracker-service/internal/domain"
)

// FetchCall records one provider invocation.
type FetchCall struct {
	LeagueCode string
	Date       string
}

// StubProvider serves canned fixture batches keyed by league code and date,
// recording every call. Keys use "league|date"; a missing key yields an
// empty batch.
type StubProvider struct {
	mu        sync.Mutex
	Responses map[string][]domain.Fixture
	Errs      map[string]error
	Calls     []FetchCall
}

// NewStubProvider constructs an empty stub.
func NewStubProvider() *StubProvider {
	return &StubProvider{
		Responses: make(map[string][]domain.Fixture),
		Errs:      make(map[string]error),
	}
}

// Respond registers a canned batch for a league/date pair.
func (p *StubProvider) Respond(leagueCode, date string, fixtures ...domain.Fixture) {
	p.Responses[key(leagueCode, date)] = fixtures
}

// Fail registers an error for a league/date pair.
func (p *StubProvider) Fail(leagueCode, date string, err error) {
	p.Errs[key(leagueCode, date)] = err
}

func (p *StubProvider) FetchFixtures(ctx context.Context, leagueCode, date string) ([]domain.Fixture, error) {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Calls = append(p.Calls, FetchCall{LeagueCode: leagueCode, Date: date})
	if err, ok := p.Errs[key(leagueCode, date)]; ok {
		return nil, err
	}
	return p.Responses[key(leagueCode, date)], nil
}

// CallCount returns how many fetches were issued.
func (p *StubProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Calls)
}

func key(leagueCode, date string) string {
	return leagueCode + "|" + date
}
