package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Urvashi-146/ThinkHire/internal/client"
	"github.com/Urvashi-146/ThinkHire/internal/intake"
	"github.com/Urvashi-146/ThinkHire/internal/metrics"
	"github.com/Urvashi-146/ThinkHire/internal/models"
)

// Transport sends one candidate to the analysis service.
// *client.Client implements it.
type Transport interface {
	Submit(ctx context.Context, cand *models.Candidate) (*models.Result, error)
}

var _ Transport = (*client.Client)(nil)

// Controller is the single writer of submission state.
//
// Every cycle gets a monotonically increasing sequence number. Starting a new
// cycle cancels the previous one, and a completion whose sequence number is
// not the latest issued is discarded. All methods are safe for concurrent use.
type Controller struct {
	transport Transport
	logger    *slog.Logger
	metrics   *metrics.Collector
	timeout   time.Duration

	mu     sync.Mutex
	state  State
	seq    uint64
	cancel context.CancelFunc
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records upload timings and outcomes into m.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithTimeout bounds every cycle, independent of the transport's own timeout.
// Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

// New creates a controller in PhaseIdle.
func New(t Transport, opts ...Option) *Controller {
	c := &Controller{
		transport: t,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Cycle is one accepted submission, ready to be sent by Run.
type Cycle struct {
	Seq       uint64
	ctx       context.Context
	cancel    context.CancelFunc
	candidate *models.Candidate
	started   time.Time
}

// Begin starts a new cycle: it supersedes any pending one, clears the
// previous result and error, and validates cand.
//
// On rejection the controller returns to PhaseIdle with the validation
// message and Begin returns the validation error. On acceptance the
// controller is in PhaseUploading and the returned cycle must be passed to Run.
func (c *Controller) Begin(ctx context.Context, cand *models.Candidate) (*Cycle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.seq++
	seq := c.seq

	c.setState(State{Phase: PhaseValidating, Seq: seq, Candidate: cand.Describe()})

	if err := intake.Validate(cand); err != nil {
		c.metrics.RecordOutcome(metrics.OutcomeRejected)
		c.setState(State{Phase: PhaseIdle, Seq: seq, Candidate: cand.Describe(), Message: err.Error()})
		return nil, err
	}

	cycleCtx, cancel := context.WithCancel(ctx)
	if c.timeout > 0 {
		cycleCtx, cancel = withTimeout(cycleCtx, cancel, c.timeout)
	}
	c.cancel = cancel

	c.logger.Debug("submission started",
		"seq", seq,
		"kind", cand.Kind.String(),
		"candidate", cand.Describe(),
		"bytes", cand.Size(),
	)

	now := time.Now()
	c.setState(State{Phase: PhaseUploading, Seq: seq, Candidate: cand.Describe(), StartedAt: now})

	return &Cycle{
		Seq:       seq,
		ctx:       cycleCtx,
		cancel:    cancel,
		candidate: cand,
		started:   now,
	}, nil
}

// withTimeout layers a deadline on ctx and returns a cancel func releasing both.
func withTimeout(ctx context.Context, parentCancel context.CancelFunc, d time.Duration) (context.Context, context.CancelFunc) {
	tctx, tcancel := context.WithTimeout(ctx, d)
	return tctx, func() {
		tcancel()
		parentCancel()
	}
}

// Run sends the cycle's candidate and applies the outcome. It always returns,
// even if the transport ignores cancellation: a cycle whose context ends is
// resolved from the context error. Returns the state after completion.
func (c *Controller) Run(cy *Cycle) State {
	type outcome struct {
		result *models.Result
		err    error
	}
	done := make(chan outcome, 1)

	cand := cy.candidate
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("transport panic: %v", r)}
			}
		}()
		res, err := c.transport.Submit(cy.ctx, cand)
		done <- outcome{result: res, err: err}
	}()

	var applied bool
	select {
	case o := <-done:
		applied = c.Complete(cy.Seq, o.result, o.err)
	case <-cy.ctx.Done():
		applied = c.Complete(cy.Seq, nil, cy.ctx.Err())
	}

	// Superseded cycles are not timed.
	if applied {
		c.metrics.RecordTiming(uploadOp(cy.candidate), time.Since(cy.started))
	}
	cy.cancel()
	return c.State()
}

// Submit runs a whole cycle synchronously: Begin then Run.
func (c *Controller) Submit(ctx context.Context, cand *models.Candidate) State {
	cy, err := c.Begin(ctx, cand)
	if err != nil {
		return c.State()
	}
	return c.Run(cy)
}

// Complete applies a transport outcome for cycle seq. It returns false and
// leaves state untouched when seq is stale or the cycle already finished.
func (c *Controller) Complete(seq uint64, res *models.Result, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq || c.state.Phase != PhaseUploading {
		c.metrics.RecordOutcome(metrics.OutcomeStale)
		c.logger.Debug("discarding stale completion", "seq", seq, "latest", c.seq, "phase", c.state.Phase.String())
		return false
	}

	next := State{Seq: seq, Candidate: c.state.Candidate, StartedAt: c.state.StartedAt}
	elapsed := time.Since(c.state.StartedAt)

	if err != nil {
		next.Phase = PhaseFailed
		next.Message = failureMessage(err)
		c.metrics.RecordOutcome(failureOutcome(next.Message))
		c.logger.Warn("submission failed",
			"seq", seq,
			"candidate", next.Candidate,
			"duration_ms", elapsed.Milliseconds(),
			"error", err.Error(),
		)
	} else {
		if res == nil {
			res = &models.Result{}
		}
		res.Normalize()
		next.Phase = PhaseSucceeded
		next.Result = res
		c.metrics.RecordOutcome(metrics.OutcomeSucceeded)
		c.logger.Info("submission succeeded",
			"seq", seq,
			"candidate", next.Candidate,
			"duration_ms", elapsed.Milliseconds(),
			"skills", len(res.Skills),
			"matches", len(res.Matches),
		)
	}

	c.cancel = nil
	c.setState(next)
	return true
}

// Reset cancels any pending cycle and returns to a clean PhaseIdle.
// A late completion of the canceled cycle is discarded.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.seq++
	c.setState(State{Phase: PhaseIdle, Seq: c.seq})
}

// setState replaces the state. Caller must hold c.mu.
func (c *Controller) setState(s State) {
	c.logger.Debug("state transition",
		"seq", s.Seq,
		"from", c.state.Phase.String(),
		"to", s.Phase.String(),
	)
	c.state = s
}

// failureMessage converts a transport error into the single generic
// message shown to the user.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, client.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return MsgTimeout
	case errors.Is(err, client.ErrCanceled), errors.Is(err, context.Canceled):
		return MsgCanceled
	default:
		return MsgFailed
	}
}

func failureOutcome(message string) string {
	switch message {
	case MsgTimeout:
		return metrics.OutcomeTimeout
	case MsgCanceled:
		return metrics.OutcomeCanceled
	default:
		return metrics.OutcomeFailed
	}
}

func uploadOp(cand *models.Candidate) string {
	if cand.IsFile() {
		return metrics.OpUploadFile
	}
	return metrics.OpUploadText
}
