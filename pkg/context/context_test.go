package context

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestInterruptLoopReturnsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)

	done := make(chan struct{})
	go func() {
		interruptLoop(ctx, cancel, c)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not return after the context was cancelled")
	}
}

func TestInterruptLoopCancelsOnSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)

	done := make(chan struct{})
	go func() {
		interruptLoop(ctx, cancel, c)
		close(done)
	}()

	c <- os.Interrupt

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("first interrupt did not cancel the context")
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not return after cancellation")
	}
}
