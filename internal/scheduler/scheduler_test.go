package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_ImmediateCycleThenShutdown(t *testing.T) {
	var runs atomic.Int32
	s := New(func(context.Context) error {
		runs.Add(1)
		return nil
	}, time.Hour, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// The first cycle fires before the first tick.
	deadline := time.After(2 * time.Second)
	for runs.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("immediate cycle never ran")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil on cancellation", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not shut down")
	}
}

func TestRun_FailedCycleKeepsLooping(t *testing.T) {
	var runs atomic.Int32
	s := New(func(context.Context) error {
		runs.Add(1)
		return errors.New("mail down")
	}, 20*time.Millisecond, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	if err := s.Run(ctx); err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
	if runs.Load() < 2 {
		t.Errorf("runs = %d, want at least 2 (loop survives failures)", runs.Load())
	}
}
