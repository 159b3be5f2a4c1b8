// Package generate drives the submit → pending → succeeded/failed
// lifecycle of a generation attempt.
package generate

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rekanban/rekanban/internal/core/wizard"
	"github.com/rekanban/rekanban/internal/relay"
)

// State is the controller's lifecycle state.
type State string

const (
	StateIdle      State = "idle"
	StatePending   State = "pending"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Generator is the outbound collaborator that turns a request into issues.
type Generator interface {
	Generate(ctx context.Context, req wizard.Request) (relay.Result, error)
}

// Controller tracks a single generation attempt at a time. Re-triggering
// while pending is a no-op; terminal states stick until Dismiss; Close
// cancels an in-flight attempt so a late completion cannot mutate state
// after teardown.
type Controller struct {
	gen     Generator
	timeout time.Duration
	log     zerolog.Logger

	mu      sync.Mutex
	state   State
	attempt int
	cancel  context.CancelFunc
	closed  bool
	result  relay.Result
	errMsg  string
}

// NewController creates an idle controller. A non-positive timeout
// disables the bounded wait.
func NewController(gen Generator, timeout time.Duration, log zerolog.Logger) *Controller {
	return &Controller{
		gen:     gen,
		timeout: timeout,
		state:   StateIdle,
		log:     log,
	}
}

// Trigger starts an attempt with the given assembled request. It returns
// a channel that receives the terminal state of this attempt, and false
// when the trigger was ignored because an attempt is already pending or
// the controller is closed. Exactly one outbound call is made per
// accepted trigger.
func (c *Controller) Trigger(ctx context.Context, req wizard.Request) (<-chan State, bool) {
	c.mu.Lock()
	if c.closed || c.state == StatePending {
		c.mu.Unlock()
		return nil, false
	}

	c.state = StatePending
	c.attempt++
	attempt := c.attempt

	var (
		callCtx context.Context
		cancel  context.CancelFunc
	)
	if c.timeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
	} else {
		callCtx, cancel = context.WithCancel(ctx)
	}
	c.cancel = cancel
	c.mu.Unlock()

	done := make(chan State, 1)

	go func() {
		defer cancel()

		result, err := c.gen.Generate(callCtx, req)

		c.mu.Lock()
		defer c.mu.Unlock()

		// A stale attempt (cancelled by Close or superseded after
		// Dismiss) must not mutate state.
		if c.closed || attempt != c.attempt {
			return
		}

		if err != nil {
			c.state = StateFailed
			c.errMsg = displayMessage(err)
			c.log.Warn().Err(err).Msg("generation attempt failed")
		} else {
			c.state = StateSucceeded
			c.result = result
			c.log.Info().Str("issues", result.IssuesLink).Msg("generation attempt succeeded")
		}

		done <- c.state
	}()

	return done, true
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Result returns the successful outcome. Valid only in StateSucceeded.
func (c *Controller) Result() (relay.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result, c.state == StateSucceeded
}

// ErrMessage returns the displayable failure message. Valid only in
// StateFailed.
func (c *Controller) ErrMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateFailed {
		return ""
	}
	return c.errMsg
}

// Dismiss returns a terminal state to idle so the user can retry.
// No-op while idle or pending.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSucceeded || c.state == StateFailed {
		c.state = StateIdle
		c.result = relay.Result{}
		c.errMsg = ""
	}
}

// Close cancels any in-flight attempt and prevents further triggers.
// Safe to call multiple times.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// displayMessage converts a generation error into a string fit for a
// banner. Remote errors already carry a displayable message.
func displayMessage(err error) string {
	var remote *relay.RemoteError
	switch {
	case errors.Is(err, relay.ErrNotConfigured):
		return "Backend is not configured. Set api.base_url in the config file."
	case errors.Is(err, relay.ErrNotConnected):
		return "Not connected to GitHub. Run `rekanban connect` first."
	case errors.As(err, &remote):
		return remote.Message
	case errors.Is(err, context.DeadlineExceeded):
		return "Generation timed out. Try again."
	default:
		return err.Error()
	}
}
