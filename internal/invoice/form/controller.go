// Package form drives the edit-invoice form through its submission
// lifecycle: Idle, Submitting, then Settled with the outcome to display.
//
// Each controller owns one rendered form. Submitted fields are snapshotted
// when the submission starts, at most one submission is in flight at a time,
// and any unexpected failure settles the form with a generic message instead
// of surfacing a fault to the rendering layer.
package form

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/msantanna/atelier.page/internal/invoice"
)

// Phase is the lifecycle position of a form instance.
type Phase int

const (
	// PhaseIdle means no submission has been triggered since the last edit.
	PhaseIdle Phase = iota
	// PhaseSubmitting means an update is in flight.
	PhaseSubmitting
	// PhaseSettled means the last submission finished and its outcome is
	// available.
	PhaseSettled
)

// ErrSubmissionInFlight rejects a trigger while an update is in flight. The
// new trigger is dropped, never queued, so the same invoice is not mutated
// concurrently.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// MsgUpdateFailedGeneric is shown when the update fails for any reason other
// than field validation.
const MsgUpdateFailedGeneric = "Failed to update invoice. Please try again."

// DefaultTimeout bounds how long a submission may stay in flight.
const DefaultTimeout = 15 * time.Second

// Updater performs the invoice mutation behind a submission.
type Updater interface {
	Update(ctx context.Context, invoiceID string, fields invoice.SubmitFields) (invoice.Confirmation, error)
}

// Controller is the submission state machine for a single form instance.
type Controller struct {
	updater   Updater
	invoiceID string
	timeout   time.Duration

	mu    sync.Mutex
	phase Phase
	state invoice.FormState
	done  chan struct{}
}

// NewController creates an idle controller for one invoice. A non-positive
// timeout falls back to DefaultTimeout.
func NewController(updater Updater, invoiceID string, timeout time.Duration) *Controller {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Controller{
		updater:   updater,
		invoiceID: invoiceID,
		timeout:   timeout,
	}
}

// Snapshot returns the current phase and the last settled outcome.
func (c *Controller) Snapshot() (Phase, invoice.FormState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase, c.state
}

// Submit triggers a submission with a snapshot of the given fields. It
// returns ErrSubmissionInFlight when an update is already running; edits made
// after the trigger do not affect the in-flight request.
func (c *Controller) Submit(fields invoice.SubmitFields) error {
	if c == nil || c.updater == nil {
		return errors.New("form controller is not configured")
	}

	c.mu.Lock()
	if c.phase == PhaseSubmitting {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}
	c.phase = PhaseSubmitting
	done := make(chan struct{})
	c.done = done
	c.mu.Unlock()

	go c.run(fields, done)
	return nil
}

// Wait blocks until the in-flight submission settles and returns the settled
// state. When nothing is in flight it returns the current state immediately.
func (c *Controller) Wait(ctx context.Context) (invoice.FormState, error) {
	c.mu.Lock()
	if c.phase != PhaseSubmitting {
		state := c.state
		c.mu.Unlock()
		return state, nil
	}
	done := c.done
	c.mu.Unlock()

	select {
	case <-done:
		c.mu.Lock()
		state := c.state
		c.mu.Unlock()
		return state, nil
	case <-ctx.Done():
		return invoice.FormState{}, ctx.Err()
	}
}

// run executes the update off the caller's goroutine and settles the form.
// The controller settles even when the updater ignores cancellation: after
// the timeout the form reports a generic failure and a late result is
// discarded.
func (c *Controller) run(fields invoice.SubmitFields, done chan struct{}) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	results := make(chan invoice.FormState, 1)
	go func() {
		results <- c.execute(ctx, fields)
	}()

	var state invoice.FormState
	select {
	case state = <-results:
	case <-ctx.Done():
		log.Printf("form: update invoice %s timed out after %s", c.invoiceID, c.timeout)
		state = invoice.FormState{Message: MsgUpdateFailedGeneric}
	}

	c.mu.Lock()
	c.phase = PhaseSettled
	c.state = state
	c.mu.Unlock()
	close(done)
}

// execute calls the updater and derives the settled state from its result.
func (c *Controller) execute(ctx context.Context, fields invoice.SubmitFields) (state invoice.FormState) {
	defer func() {
		if recovered := recover(); recovered != nil {
			log.Printf("form: update invoice %s panicked: %v", c.invoiceID, recovered)
			state = invoice.FormState{Message: MsgUpdateFailedGeneric}
		}
	}()

	conf, err := c.updater.Update(ctx, c.invoiceID, fields)
	if err != nil {
		var verr *invoice.ValidationError
		if errors.As(err, &verr) {
			return invoice.FormState{Message: verr.Error(), Errors: verr.Errors}
		}
		log.Printf("form: update invoice %s: %v", c.invoiceID, err)
		return invoice.FormState{Message: MsgUpdateFailedGeneric}
	}
	return invoice.FormState{OK: true, Message: conf.Message}
}

// Registry hands out one controller per invoice so concurrent requests for
// the same form share its single-flight rule.
type Registry struct {
	updater Updater
	timeout time.Duration

	mu          sync.Mutex
	controllers map[string]*Controller
}

// NewRegistry creates an empty controller registry.
func NewRegistry(updater Updater, timeout time.Duration) *Registry {
	return &Registry{
		updater:     updater,
		timeout:     timeout,
		controllers: make(map[string]*Controller),
	}
}

// Controller returns the controller for an invoice, creating it on first use.
func (r *Registry) Controller(invoiceID string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()
	ctrl, ok := r.controllers[invoiceID]
	if !ok {
		ctrl = NewController(r.updater, invoiceID, r.timeout)
		r.controllers[invoiceID] = ctrl
	}
	return ctrl
}
