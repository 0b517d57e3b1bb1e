package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type stubEngine struct {
	mu          sync.Mutex
	discoveries int
	resolves    int
	heartbeats  int
	discoverErr error
	resolveErr  error
}

func (e *stubEngine) DiscoverFixtures(ctx context.Context) error {
	_ = ctx
	e.mu.Lock()
	defer e.mu.Unlock()
	e.discoveries++
	return e.discoverErr
}

func (e *stubEngine) ResolveTracked(ctx context.Context) error {
	_ = ctx
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resolves++
	return e.resolveErr
}

func (e *stubEngine) Heartbeat(ctx context.Context) error {
	_ = ctx
	e.mu.Lock()
	defer e.mu.Unlock()
	e.heartbeats++
	return nil
}

func (e *stubEngine) counts() (int, int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.discoveries, e.resolves, e.heartbeats
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSchedulerRunsDiscoveryOnBoot(t *testing.T) {
	engine := &stubEngine{}
	s := New(engine, nil, nil, time.UTC, 22, time.Hour, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Stop(context.Background())

	waitFor(t, func() bool {
		d, _, _ := engine.counts()
		return d == 1
	})
}

func TestSchedulerFiresResolveAndHeartbeatOnInterval(t *testing.T) {
	engine := &stubEngine{}
	s := New(engine, nil, nil, time.UTC, 22, 10*time.Millisecond, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Stop(context.Background())

	waitFor(t, func() bool {
		_, r, h := engine.counts()
		return r >= 2 && h >= 2
	})
}

func TestSchedulerRunsDiscoveryOncePerAnchorDay(t *testing.T) {
	engine := &stubEngine{}
	s := New(engine, nil, nil, time.UTC, 22, time.Hour, time.Hour)
	s.checkInterval = 5 * time.Millisecond
	s.now = func() time.Time {
		return time.Date(2024, 8, 17, 22, 30, 0, 0, time.UTC)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Stop(context.Background())

	waitFor(t, func() bool {
		d, _, _ := engine.counts()
		return d >= 1
	})

	// The boot run lands inside the anchor hour, so the ticker must not fire
	// discovery again for the same local day.
	time.Sleep(50 * time.Millisecond)
	d, _, _ := engine.counts()
	if d != 1 {
		t.Fatalf("expected a single discovery for the day, got %d", d)
	}
}

func TestSchedulerFiresDiscoveryAtAnchorHour(t *testing.T) {
	engine := &stubEngine{}

	var mu sync.Mutex
	current := time.Date(2024, 8, 17, 10, 0, 0, 0, time.UTC)

	s := New(engine, nil, nil, time.UTC, 22, time.Hour, time.Hour)
	s.checkInterval = 5 * time.Millisecond
	s.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Stop(context.Background())

	// Boot run happens outside the anchor hour and must not consume the day.
	waitFor(t, func() bool {
		d, _, _ := engine.counts()
		return d == 1
	})

	mu.Lock()
	current = time.Date(2024, 8, 17, 22, 0, 30, 0, time.UTC)
	mu.Unlock()

	waitFor(t, func() bool {
		d, _, _ := engine.counts()
		return d == 2
	})
}

func TestSchedulerStatusTracksFailures(t *testing.T) {
	engine := &stubEngine{resolveErr: errors.New("feed down")}
	s := New(engine, nil, nil, time.UTC, 22, 10*time.Millisecond, time.Hour)

	if s.Status().IsReady() {
		t.Fatal("expected not ready before any success")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Stop(context.Background())

	// Boot discovery succeeds, then resolves keep failing.
	waitFor(t, func() bool {
		return s.Status().ConsecutiveFailures >= 3
	})

	status := s.Status()
	if status.IsReady() {
		t.Fatal("expected not ready after repeated failures")
	}
	if status.LastError != "feed down" {
		t.Fatalf("unexpected last error %q", status.LastError)
	}
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	engine := &stubEngine{}
	s := New(engine, nil, nil, time.UTC, 22, time.Hour, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("first stop: %v", err)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}
