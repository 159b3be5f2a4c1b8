package generate

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rekanban/rekanban/internal/core/wizard"
	"github.com/rekanban/rekanban/internal/relay"
)

// fakeGenerator blocks until released, counting outbound calls.
type fakeGenerator struct {
	calls   atomic.Int32
	release chan struct{}
	result  relay.Result
	err     error
}

func newFakeGenerator() *fakeGenerator {
	return &fakeGenerator{
		release: make(chan struct{}),
		result:  relay.Result{IssuesLink: "https://github.com/acme/hack/issues", CreatedIssueCount: 3},
	}
}

func (f *fakeGenerator) Generate(ctx context.Context, _ wizard.Request) (relay.Result, error) {
	f.calls.Add(1)
	select {
	case <-f.release:
	case <-ctx.Done():
		return relay.Result{}, ctx.Err()
	}
	return f.result, f.err
}

func TestController_Lifecycle(t *testing.T) {
	t.Run("idle to pending to succeeded", func(t *testing.T) {
		gen := newFakeGenerator()
		c := NewController(gen, 0, zerolog.Nop())

		done, ok := c.Trigger(context.Background(), wizard.Request{})
		require.True(t, ok)
		assert.Equal(t, StatePending, c.State())

		close(gen.release)
		assert.Equal(t, StateSucceeded, <-done)

		result, ok := c.Result()
		require.True(t, ok)
		assert.Equal(t, 3, result.CreatedIssueCount)
	})

	t.Run("failure exposes a displayable message", func(t *testing.T) {
		gen := newFakeGenerator()
		gen.err = &relay.RemoteError{Status: 500, Message: "no tasks were generated"}
		c := NewController(gen, 0, zerolog.Nop())

		done, ok := c.Trigger(context.Background(), wizard.Request{})
		require.True(t, ok)

		close(gen.release)
		assert.Equal(t, StateFailed, <-done)
		assert.Equal(t, "no tasks were generated", c.ErrMessage())
	})

	t.Run("dismiss returns terminal state to idle", func(t *testing.T) {
		gen := newFakeGenerator()
		c := NewController(gen, 0, zerolog.Nop())

		done, _ := c.Trigger(context.Background(), wizard.Request{})
		close(gen.release)
		<-done

		c.Dismiss()

		assert.Equal(t, StateIdle, c.State())
		_, ok := c.Result()
		assert.False(t, ok)
	})

	t.Run("dismiss while pending is a no-op", func(t *testing.T) {
		gen := newFakeGenerator()
		c := NewController(gen, 0, zerolog.Nop())

		_, _ = c.Trigger(context.Background(), wizard.Request{})
		c.Dismiss()

		assert.Equal(t, StatePending, c.State())
		close(gen.release)
	})
}

func TestController_SingleFlight(t *testing.T) {
	gen := newFakeGenerator()
	c := NewController(gen, 0, zerolog.Nop())

	done, ok := c.Trigger(context.Background(), wizard.Request{})
	require.True(t, ok)

	// Re-trigger while pending must not issue a second outbound call.
	_, ok = c.Trigger(context.Background(), wizard.Request{})
	assert.False(t, ok)

	close(gen.release)
	<-done

	assert.EqualValues(t, 1, gen.calls.Load())
}

func TestController_Close(t *testing.T) {
	t.Run("cancels the in-flight attempt without mutating state", func(t *testing.T) {
		gen := newFakeGenerator()
		c := NewController(gen, 0, zerolog.Nop())

		_, ok := c.Trigger(context.Background(), wizard.Request{})
		require.True(t, ok)

		c.Close()

		// The generator observes cancellation and returns, but the late
		// completion must not transition the controller.
		assert.Never(t, func() bool {
			return c.State() != StatePending
		}, 100*time.Millisecond, 10*time.Millisecond)

		_, ok = c.Trigger(context.Background(), wizard.Request{})
		assert.False(t, ok, "closed controller must reject triggers")
	})

	t.Run("close twice is safe", func(t *testing.T) {
		c := NewController(newFakeGenerator(), 0, zerolog.Nop())
		c.Close()
		c.Close()
	})
}

func TestController_Timeout(t *testing.T) {
	gen := newFakeGenerator() // never released
	c := NewController(gen, 20*time.Millisecond, zerolog.Nop())

	done, ok := c.Trigger(context.Background(), wizard.Request{})
	require.True(t, ok)

	select {
	case state := <-done:
		assert.Equal(t, StateFailed, state)
		assert.Equal(t, "Generation timed out. Try again.", c.ErrMessage())
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for bounded-wait failure")
	}
}
