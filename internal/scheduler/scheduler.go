package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"match-tracker-service/internal/logging"
	"match-tracker-service/internal/metrics"
)

const (
	defaultResolveInterval   = 15 * time.Minute
	defaultHeartbeatInterval = 4 * time.Minute
	defaultCheckInterval     = time.Minute
)

// Engine is the work the scheduler drives on its three cadences.
type Engine interface {
	DiscoverFixtures(ctx context.Context) error
	ResolveTracked(ctx context.Context) error
	Heartbeat(ctx context.Context) error
}

// Scheduler runs discovery once per local day at the anchor hour, resolution
// on a fixed interval, and heartbeats on a fixed interval.
type Scheduler struct {
	engine            Engine
	logger            *slog.Logger
	metrics           *metrics.Recorder
	loc               *time.Location
	anchorHour        int
	resolveInterval   time.Duration
	heartbeatInterval time.Duration
	checkInterval     time.Duration
	now               func() time.Time

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu          sync.RWMutex
	status            Status
	lastDiscoveryDate string
}

// Status describes the recent health of the scheduled cycles.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the scheduler has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Scheduler with sane defaults.
func New(engine Engine, logger *slog.Logger, recorder *metrics.Recorder, loc *time.Location, anchorHour int, resolveInterval, heartbeatInterval time.Duration) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	if anchorHour < 0 || anchorHour > 23 {
		anchorHour = 22
	}
	if resolveInterval <= 0 {
		resolveInterval = defaultResolveInterval
	}
	if heartbeatInterval <= 0 {
		heartbeatInterval = defaultHeartbeatInterval
	}
	return &Scheduler{
		engine:            engine,
		logger:            logger,
		metrics:           recorder,
		loc:               loc,
		anchorHour:        anchorHour,
		resolveInterval:   resolveInterval,
		heartbeatInterval: heartbeatInterval,
		checkInterval:     defaultCheckInterval,
		now:               time.Now,
		done:              make(chan struct{}),
	}
}

// Start begins the scheduled loops until the context is cancelled or Stop is
// called. An initial discovery runs on boot so a restart mid-window does not
// wait a day; inserts are idempotent so the catch-up is safe.
func (s *Scheduler) Start(ctx context.Context) {
	s.startMu.Lock()
	if s.started {
		s.startMu.Unlock()
		return
	}
	s.started = true
	s.startMu.Unlock()

	discoveryTicker := time.NewTicker(s.checkInterval)
	resolveTicker := time.NewTicker(s.resolveInterval)
	heartbeatTicker := time.NewTicker(s.heartbeatInterval)

	go func() {
		defer discoveryTicker.Stop()
		defer resolveTicker.Stop()
		defer heartbeatTicker.Stop()

		logging.Info(s.logger, "scheduler started",
			"anchor_hour", s.anchorHour,
			"resolve_interval", s.resolveInterval.String(),
			"heartbeat_interval", s.heartbeatInterval.String(),
		)

		s.runDiscovery(ctx, true)

		for {
			select {
			case <-ctx.Done():
				logging.Info(s.logger, "scheduler stopped")
				return
			case <-s.done:
				logging.Info(s.logger, "scheduler stopped")
				return
			case <-discoveryTicker.C:
				if s.discoveryDue() {
					s.runDiscovery(ctx, false)
				}
			case <-resolveTicker.C:
				s.runResolve(ctx)
			case <-heartbeatTicker.C:
				s.runHeartbeat(ctx)
			}
		}
	}()
}

// Stop halts the scheduled loops.
func (s *Scheduler) Stop(ctx context.Context) error {
	_ = ctx
	s.stopOnce.Do(func() {
		close(s.done)
	})
	return nil
}

// discoveryDue reports whether the local clock has entered the anchor hour on
// a day discovery has not yet run.
func (s *Scheduler) discoveryDue() bool {
	local := s.now().In(s.loc)
	if local.Hour() != s.anchorHour {
		return false
	}
	s.statusMu.RLock()
	last := s.lastDiscoveryDate
	s.statusMu.RUnlock()
	return last != local.Format(time.DateOnly)
}

func (s *Scheduler) runDiscovery(ctx context.Context, boot bool) {
	start := time.Now()
	s.recordAttempt(start)

	err := s.engine.DiscoverFixtures(ctx)
	if err != nil {
		logging.Error(s.logger, "scheduled discovery failed", err,
			logging.FieldDurationMS, time.Since(start).Milliseconds())
		s.recordFailure(err, start)
		return
	}
	s.recordSuccess(start)

	// A boot-time catch-up outside the anchor hour leaves the date unset so
	// the regular run still fires later the same day.
	local := s.now().In(s.loc)
	if !boot || local.Hour() == s.anchorHour {
		s.statusMu.Lock()
		s.lastDiscoveryDate = local.Format(time.DateOnly)
		s.statusMu.Unlock()
	}

	logging.Info(s.logger, "scheduled discovery completed",
		logging.FieldDurationMS, time.Since(start).Milliseconds())
}

func (s *Scheduler) runResolve(ctx context.Context) {
	start := time.Now()
	s.recordAttempt(start)

	if err := s.engine.ResolveTracked(ctx); err != nil {
		logging.Error(s.logger, "scheduled resolution failed", err,
			logging.FieldDurationMS, time.Since(start).Milliseconds())
		s.recordFailure(err, start)
		return
	}
	s.recordSuccess(start)
}

func (s *Scheduler) runHeartbeat(ctx context.Context) {
	if err := s.engine.Heartbeat(ctx); err != nil {
		logging.Warn(s.logger, "heartbeat failed", "error", err)
	}
}

// Status returns a snapshot of the scheduler's recent health.
func (s *Scheduler) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

func (s *Scheduler) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Scheduler) recordSuccess(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
}

func (s *Scheduler) recordFailure(err error, at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures++
	if err != nil {
		s.status.LastError = err.Error()
	}
	s.status.LastAttempt = at
}
