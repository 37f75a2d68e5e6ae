package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"crewcycle.io/crewcycle/internal/pkg/logger"
)

func newTestPools(t *testing.T) *Pools {
	t.Helper()
	_ = logger.Init("error", "console")

	pools, err := NewPools(context.Background(), PoolConfig{
		GeneralPoolSize: 4,
		MailPoolSize:    2,
	})
	if err != nil {
		t.Fatalf("NewPools: %v", err)
	}
	t.Cleanup(pools.Shutdown)
	return pools
}

func TestPool_SubmitRunsTask(t *testing.T) {
	pools := newTestPools(t)

	var ran atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)
	err := pools.General.Submit(context.Background(), func(ctx context.Context) {
		defer wg.Done()
		ran.Store(true)
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	wg.Wait()

	if !ran.Load() {
		t.Fatal("submitted task did not run")
	}
}

func TestPool_SubmitCancelledContext(t *testing.T) {
	pools := newTestPools(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pools.General.Submit(ctx, func(ctx context.Context) {
		t.Error("task must not run with cancelled context")
	})
	if err == nil {
		t.Fatal("Submit with cancelled context should return the context error")
	}
}

func TestPools_SubmitDetached(t *testing.T) {
	pools := newTestPools(t)

	done := make(chan struct{})
	err := pools.SubmitDetached("mail", func(ctx context.Context) {
		close(done)
	})
	if err != nil {
		t.Fatalf("SubmitDetached: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("detached task did not run")
	}
}

func TestPools_Metrics(t *testing.T) {
	pools := newTestPools(t)

	m := pools.Metrics()
	if _, ok := m["general"]; !ok {
		t.Fatal("metrics missing general pool")
	}
	if _, ok := m["mail"]; !ok {
		t.Fatal("metrics missing mail pool")
	}
}
