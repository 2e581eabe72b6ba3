package context

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/omgnotthatguy/errtree/pkg/log"
)

var (
	ctx            context.Context
	cancel         context.CancelFunc
	ctxInitialized sync.Once
)

// AddInterruptCancellation attaches an interrupt handler that cancels the
// context on the first SIGINT/SIGTERM. A second interrupt exits the
// process immediately
func AddInterruptCancellation(ctx context.Context, cancel context.CancelFunc) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go interruptLoop(ctx, cancel, c)
}

// interruptLoop cancels on the first signal and exits the process on the
// second. Once the context is done it hands the signals back to the
// default disposition and returns, so a later interrupt still terminates
// immediately
func interruptLoop(ctx context.Context, cancel context.CancelFunc, c chan os.Signal) {
	interrupts := 0
	for {
		select {
		case <-c:
			interrupts++
			if interrupts > 1 {
				log.Info().Msg("Received multiple interrupt signals. Exiting")
				os.Exit(1)
			}
			log.Info().Msg("Received interrupt signal")
			cancel()
		case <-ctx.Done():
			signal.Stop(c)
			return
		}
	}
}

// InitContext will initialize the global context used to catch interrupts.
// This is automatically called by Context and Cancel
func InitContext() {
	ctxInitialized.Do(func() {
		ctx, cancel = context.WithCancel(context.Background())
		AddInterruptCancellation(ctx, cancel)
	})
}

// Context will initialize the global context and attach the interrupt
// handler. This is safe to call from multiple goroutines and will always
// return the same context
func Context() context.Context {
	InitContext()
	return ctx
}

// Cancel will cancel the global context. Calling this multiple times is the
// equivalent of cancelling the same context multiple times
func Cancel() {
	InitContext()
	cancel()
}
