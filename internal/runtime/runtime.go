// Package runtime owns process lifecycle: the global context, background
// goroutines with panic recovery, and the deferred exit path.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/MikailBag/simple-game/internal/logs"
)

type Runtime struct {
	ctx        context.Context
	cancelFunc context.CancelFunc

	mu sync.Mutex

	wg              sync.WaitGroup
	shutdownTimeout time.Duration

	firstFailErr error
}

type runtimeKey struct{}

func New() *Runtime {
	baseCtx, cancel := context.WithCancel(context.Background())
	rt := &Runtime{
		cancelFunc:      cancel,
		shutdownTimeout: 5 * time.Second,
	}
	// The runtime pointer travels through the context so command handlers can
	// pick it up at the cobra boundary without extra plumbing. It is read
	// exactly once, at the root of each command.
	ctx := context.WithValue(baseCtx, runtimeKey{}, rt)
	rt.ctx = ctx
	return rt
}

func FromContext(ctx context.Context) *Runtime {
	v := ctx.Value(runtimeKey{})
	if v == nil {
		return nil
	}
	rt, _ := v.(*Runtime)
	return rt
}

func FromContextOrPanic(ctx context.Context) *Runtime {
	rt := FromContext(ctx)
	if rt == nil {
		panic(errors.New("runtime not found in this context"))
	}
	return rt
}

func (rt *Runtime) Ctx() context.Context {
	return rt.ctx
}

func (rt *Runtime) CancelCtx() {
	rt.cancelFunc()
}

// GoNamed runs fn in a new goroutine with panic recovery.
//
// Contract:
//   - If fn panics, the panic is recovered, wrapped into an error, recorded,
//     and the global context is cancelled.
//   - Runtime.Wait() waits for all such goroutines and returns the first error.
func (rt *Runtime) GoNamed(name string, fn func()) {
	if name == "" {
		name = "anonymous"
	}
	rt.wg.Go(func() {
		logs.Debugf("%s goroutine start", name)
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("panic: %v\n%s", r, debug.Stack())
				rt.mu.Lock()
				if rt.firstFailErr == nil {
					rt.firstFailErr = err
					rt.cancelFunc()
				}
				rt.mu.Unlock()
			}
		}()

		fn()
		logs.Debugf("%s goroutine finish", name)
	})
}

func (rt *Runtime) Wait() error {
	rt.wg.Wait()

	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.firstFailErr
}

// OnShutdown registers fn to run once the global context is cancelled.
// fn gets a fresh context bounded by the shutdown timeout.
func (rt *Runtime) OnShutdown(fn func(ctx context.Context)) {
	rt.GoNamed("OnShutdown", func() {
		<-rt.ctx.Done()

		cleanupCtx, cancel := context.WithTimeout(context.Background(), rt.shutdownTimeout)
		defer cancel()

		fn(cleanupCtx)
	})
}

// Finalize handles both panic and normal exit.
// Call it in a defer at the top of main.
func (rt *Runtime) Finalize(appName, helpHint string, execErr *error) {
	if r := recover(); r != nil {
		fmt.Fprintf(os.Stderr, "%s panic: %v\n", appName, r)
		fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
		if helpHint != "" {
			fmt.Fprintln(os.Stderr, helpHint)
		}

		rt.CancelCtx()
		_ = rt.Wait()
		os.Exit(1)
	}

	rt.CancelCtx()
	waitErr := rt.Wait()

	if execErr != nil && *execErr != nil {
		logs.Errorf("%s error: %v", appName, *execErr)
		if helpHint != "" {
			fmt.Fprintln(os.Stderr, helpHint)
		}
		os.Exit(1)
	} else if waitErr != nil {
		logs.Errorf("%s fail reason: %v", appName, waitErr)
		os.Exit(1)
	}
}
