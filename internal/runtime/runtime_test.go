// Tests in this file cover the runtime lifecycle: context plumbing, panic
// recovery in named goroutines, and shutdown hooks.
package runtime

import (
	"context"
	"strings"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	rt := New()
	defer rt.CancelCtx()

	if got := FromContext(rt.Ctx()); got != rt {
		t.Fatalf("FromContext = %p, want %p", got, rt)
	}
	if got := FromContext(context.Background()); got != nil {
		t.Fatalf("FromContext on a bare context = %p, want nil", got)
	}
	if got := FromContextOrPanic(rt.Ctx()); got != rt {
		t.Fatalf("FromContextOrPanic = %p, want %p", got, rt)
	}
}

func TestGoNamedRecoversPanic(t *testing.T) {
	t.Parallel()

	rt := New()
	rt.GoNamed("boom", func() { panic("kaboom") })

	err := rt.Wait()
	if err == nil || !strings.Contains(err.Error(), "kaboom") {
		t.Fatalf("Wait = %v, want recovered panic", err)
	}

	select {
	case <-rt.Ctx().Done():
	default:
		t.Fatal("context still live after a goroutine panic")
	}
}

func TestOnShutdownRunsOnCancel(t *testing.T) {
	t.Parallel()

	rt := New()

	ran := make(chan struct{})
	rt.OnShutdown(func(ctx context.Context) {
		if ctx.Err() != nil {
			t.Error("shutdown context already expired")
		}
		close(ran)
	})

	rt.CancelCtx()
	if err := rt.Wait(); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}

	select {
	case <-ran:
	default:
		t.Fatal("shutdown hook never ran")
	}
}
