package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"match-tracker-service/internal/domain"
	"match-tracker-service/internal/logging"
	"match-tracker-service/internal/metrics"
	"match-tracker-service/internal/providers"
	"match-tracker-service/internal/publisher"
	"match-tracker-service/internal/store"
	"match-tracker-service/internal/timeutil"
)

// Config carries the tracking policy: which competitions to watch, the
// publishing window, and the lifecycle thresholds.
type Config struct {
	Leagues    []string
	Window     timeutil.Window
	Thresholds Thresholds
}

// Tracker is the fixture lifecycle engine. It discovers fixtures entering
// the publishing window and resolves tracked fixtures to a final outcome,
// touching the store only through idempotent insert/delete operations.
type Tracker struct {
	provider  providers.FixtureProvider
	store     store.TrackedStore
	publisher publisher.Publisher
	cfg       Config
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
}

// New constructs a Tracker.
func New(provider providers.FixtureProvider, trackedStore store.TrackedStore, pub publisher.Publisher, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Tracker {
	if cfg.Thresholds.Grace <= 0 {
		cfg.Thresholds.Grace = 15 * time.Minute
	}
	if cfg.Thresholds.ResultDelay <= cfg.Thresholds.Grace {
		cfg.Thresholds.ResultDelay = 110 * time.Minute
	}
	return &Tracker{
		provider:  provider,
		store:     trackedStore,
		publisher: pub,
		cfg:       cfg,
		logger:    logger,
		metrics:   recorder,
		now:       time.Now,
	}
}

// DiscoverFixtures fetches each configured competition, keeps the fixtures
// inside the current publishing window, announces them, and records them for
// tracking. Safe to run more than once per window: inserts are idempotent and
// re-announcing is at worst a duplicate message.
func (t *Tracker) DiscoverFixtures(ctx context.Context) error {
	start := time.Now()
	now := t.now()

	var discovered []domain.Fixture
	var fetchErr error
	for _, league := range t.cfg.Leagues {
		fixtures, err := t.provider.FetchFixtures(ctx, league, "")
		if err != nil {
			// One unreachable competition must not abort the rest.
			logging.Warn(t.logger, "discovery fetch failed", logging.FieldLeague, league, "error", err)
			fetchErr = err
			continue
		}
		for _, f := range fixtures {
			if !t.cfg.Window.Contains(now, f.Kickoff) {
				continue
			}
			discovered = append(discovered, f)
		}
	}

	t.recordCycle(metrics.CycleDiscovery, time.Since(start), fetchErr)

	if len(discovered) == 0 {
		logging.Info(t.logger, "no fixtures in publishing window")
		return fetchErr
	}

	if err := t.publisher.PublishDiscovered(ctx, discovered); err != nil {
		logging.Error(t.logger, "publish discovered failed", err, logging.FieldCount, len(discovered))
	}

	for _, f := range discovered {
		if err := t.store.InsertIfAbsent(ctx, f.Tracked()); err != nil {
			logging.Error(t.logger, "tracking insert failed", err, logging.FieldMatchID, f.ID)
			continue
		}
		logging.Info(t.logger, "tracking fixture",
			logging.FieldMatchID, f.ID,
			logging.FieldLeague, f.LeagueCode,
			"home", f.Home,
			"away", f.Away,
		)
	}

	if t.metrics != nil {
		t.metrics.RecordDiscovered(len(discovered))
	}
	return fetchErr
}

// ResolveTracked re-evaluates every tracked fixture against the clock,
// cleans up postponed fixtures, and publishes results confirmed final
// upstream. Each fixture is handled independently; re-fetches are batched by
// (league, date) so competitions sharing a matchday cost one upstream call.
func (t *Tracker) ResolveTracked(ctx context.Context) error {
	start := time.Now()
	now := t.now().UTC()

	records, err := t.store.List(ctx)
	if err != nil {
		err = fmt.Errorf("list tracked fixtures: %w", err)
		t.recordCycle(metrics.CycleResolve, time.Since(start), err)
		return err
	}

	day := newDayFetcher(t.provider)
	var finished []domain.Fixture
	postponed := 0

	for _, rec := range records {
		if rec.Incomplete() {
			// Left tracked for manual inspection rather than deleted.
			logging.Warn(t.logger, "skipping tracked fixture with missing fields",
				logging.FieldMatchID, rec.MatchID,
				logging.FieldLeague, rec.LeagueCode,
			)
			continue
		}

		switch Classify(rec.Kickoff, now, t.cfg.Thresholds) {
		case StateNotDue, StateGrace:
			continue

		case StatePostponementCheck:
			events, err := day.fetch(ctx, rec.LeagueCode, rec.Kickoff)
			if err != nil {
				// An unreachable feed is not evidence of postponement.
				logging.Warn(t.logger, "postponement check fetch failed",
					logging.FieldMatchID, rec.MatchID, "error", err)
				continue
			}
			current, found := findByID(events, rec.MatchID)
			if !found || current.Status.IsScheduled() {
				if err := t.store.Delete(ctx, rec.MatchID); err != nil {
					logging.Error(t.logger, "postponed cleanup failed", err, logging.FieldMatchID, rec.MatchID)
					continue
				}
				postponed++
				logging.Info(t.logger, "fixture presumed postponed, untracked",
					logging.FieldMatchID, rec.MatchID,
					logging.FieldLeague, rec.LeagueCode,
				)
			}

		case StateResolve:
			events, err := day.fetch(ctx, rec.LeagueCode, rec.Kickoff)
			if err != nil {
				logging.Warn(t.logger, "result fetch failed",
					logging.FieldMatchID, rec.MatchID, "error", err)
				continue
			}
			current, found := findByID(events, rec.MatchID)
			if !found || !current.Finished() {
				// Upstream has not confirmed completion; retry next cycle.
				continue
			}
			if err := t.store.Delete(ctx, rec.MatchID); err != nil {
				logging.Error(t.logger, "untracking resolved fixture failed", err, logging.FieldMatchID, rec.MatchID)
				continue
			}
			finished = append(finished, current)
		}
	}

	if postponed > 0 && t.metrics != nil {
		t.metrics.RecordPostponed(postponed)
	}

	if len(finished) == 0 {
		logging.Info(t.logger, "no results ready")
		t.recordCycle(metrics.CycleResolve, time.Since(start), nil)
		return nil
	}

	// Records are already deleted; a publish failure here means the result
	// is lost rather than duplicated, which is the chosen trade-off.
	if err := t.publisher.PublishResults(ctx, finished); err != nil {
		logging.Error(t.logger, "publish results failed", err, logging.FieldCount, len(finished))
	}
	if t.metrics != nil {
		t.metrics.RecordResultsPublished(len(finished))
	}
	logging.Info(t.logger, "results published", logging.FieldCount, len(finished))

	t.recordCycle(metrics.CycleResolve, time.Since(start), nil)
	return nil
}

// Heartbeat signals liveness on the delivery channel.
func (t *Tracker) Heartbeat(ctx context.Context) error {
	return t.publisher.PublishHeartbeat(ctx)
}

func (t *Tracker) recordCycle(kind string, duration time.Duration, err error) {
	if t.metrics != nil {
		t.metrics.RecordCycle(kind, duration, err)
	}
}

func findByID(fixtures []domain.Fixture, matchID string) (domain.Fixture, bool) {
	for _, f := range fixtures {
		if f.ID == matchID {
			return f, true
		}
	}
	return domain.Fixture{}, false
}

// dayFetcher memoizes one scoreboard fetch per (league, date) within a
// single resolution cycle.
type dayFetcher struct {
	provider providers.FixtureProvider
	results  map[string][]domain.Fixture
	errs     map[string]error
}

func newDayFetcher(provider providers.FixtureProvider) *dayFetcher {
	return &dayFetcher{
		provider: provider,
		results:  make(map[string][]domain.Fixture),
		errs:     make(map[string]error),
	}
}

func (d *dayFetcher) fetch(ctx context.Context, leagueCode string, kickoff time.Time) ([]domain.Fixture, error) {
	date := timeutil.QueryDate(kickoff)
	key := leagueCode + "|" + date
	if err, ok := d.errs[key]; ok {
		return nil, err
	}
	if fixtures, ok := d.results[key]; ok {
		return fixtures, nil
	}

	fixtures, err := d.provider.FetchFixtures(ctx, leagueCode, date)
	if err != nil {
		d.errs[key] = err
		return nil, err
	}
	d.results[key] = fixtures
	return fixtures, nil
}
