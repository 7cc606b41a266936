package worker

import (
	"context"
	"errors"
	"testing"
	"time"
)

// blockingWorker runs until its context is cancelled.
type blockingWorker struct {
	cancelled bool
}

func (w *blockingWorker) Start(ctx context.Context) error {
	<-ctx.Done()
	w.cancelled = true
	return nil
}

type failingWorker struct {
	err error
}

func (w *failingWorker) Start(ctx context.Context) error {
	return w.err
}

func TestManagerStopsOnContextCancel(t *testing.T) {
	a, b := &blockingWorker{}, &blockingWorker{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- NewManager(a, b).Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("manager did not stop after cancellation")
	}
	if !a.cancelled || !b.cancelled {
		t.Error("workers did not observe cancellation")
	}
}

func TestManagerWorkerFailureStopsGroup(t *testing.T) {
	boom := errors.New("bind: address already in use")
	blocking := &blockingWorker{}

	done := make(chan error, 1)
	go func() {
		done <- NewManager(&failingWorker{err: boom}, blocking).Start(context.Background())
	}()

	select {
	case err := <-done:
		if !errors.Is(err, boom) {
			t.Fatalf("error = %v, want the worker's failure", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("manager did not stop after a worker failed")
	}
	if !blocking.cancelled {
		t.Error("surviving worker was not cancelled")
	}
}
