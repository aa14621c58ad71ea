// Package deletion implements the confirmation gate in front of destructive
// actions: the user has to type the exact name of the target before the
// delete operation can be committed.
package deletion

import (
	"context"
	"fmt"
	"sync"

	"github.com/lerenn/kws/pkg/logger"
)

// DeleteFunc deletes the named target.
type DeleteFunc func(ctx context.Context, name string) error

// CloseReason records how an open workflow was closed.
type CloseReason int

// Close reasons.
const (
	CloseReasonNone CloseReason = iota
	CloseReasonDeleted
	CloseReasonCancelled
	CloseReasonDismissed
)

func (r CloseReason) String() string {
	switch r {
	case CloseReasonDeleted:
		return "deleted"
	case CloseReasonCancelled:
		return "cancelled"
	case CloseReasonDismissed:
		return "dismissed"
	default:
		return "none"
	}
}

// NewWorkflowParams contains parameters for creating a new Workflow.
type NewWorkflowParams struct {
	// Delete is invoked once per successful commit. Required.
	Delete DeleteFunc
	// OnClose is invoked exactly once each time the workflow closes.
	OnClose func()
	Logger  logger.Logger
}

// Workflow is the confirmation state machine. It is safe for concurrent use;
// the lock is not held while the delete operation runs.
type Workflow struct {
	mu sync.Mutex

	deleteFn DeleteFunc
	onClose  func()
	logger   logger.Logger

	open    bool
	target  string
	entered string
	outcome Outcome
	err     error
	reason  CloseReason
}

// NewWorkflow creates a closed Workflow.
func NewWorkflow(params NewWorkflowParams) *Workflow {
	if params.Delete == nil {
		panic("deletion: NewWorkflow requires a Delete function")
	}

	onClose := params.OnClose
	if onClose == nil {
		onClose = func() {}
	}

	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	return &Workflow{
		deleteFn: params.Delete,
		onClose:  onClose,
		logger:   l,
	}
}

// Open moves the workflow from closed to open for target, clearing the
// entered text and the previous outcome. Opening an already open workflow
// for the same target is not a transition and keeps the current state.
func (w *Workflow) Open(target string) error {
	if target == "" {
		return ErrEmptyTarget
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.open {
		if w.target == target {
			return nil
		}
		return fmt.Errorf("%w: %q", ErrAlreadyOpen, w.target)
	}

	w.open = true
	w.target = target
	w.entered = ""
	w.outcome = OutcomeIdle
	w.err = nil
	w.reason = CloseReasonNone

	w.logger.Debug("deletion dialog opened", "target", target)
	return nil
}

// SetEnteredText replaces the entered text. It has no other side effect.
func (w *Workflow) SetEnteredText(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entered = text
}

// Commit issues the delete operation for the target. It returns
// ErrNotOpen, ErrCommitInProgress or ErrNameMismatch without calling the
// delete operation when the commit is not allowed, and a *DeleteFailedError
// when the delete operation fails. On success the workflow closes and the
// close callback runs.
func (w *Workflow) Commit(ctx context.Context) error {
	run, err := w.Begin()
	if err != nil {
		return err
	}
	return run(ctx)
}

// Begin moves the workflow to Pending and returns the function issuing the
// delete. Hosts that run the delete outside their event loop call Begin from
// the loop so a second commit is refused before the first delete starts.
// The returned function must be called exactly once.
func (w *Workflow) Begin() (func(ctx context.Context) error, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case !w.open:
		return nil, ErrNotOpen
	case w.outcome == OutcomePending:
		return nil, ErrCommitInProgress
	case w.entered != w.target:
		return nil, ErrNameMismatch
	}
	w.outcome = OutcomePending
	w.err = nil
	target := w.target

	return func(ctx context.Context) error {
		return w.finish(ctx, target)
	}, nil
}

func (w *Workflow) finish(ctx context.Context, target string) error {
	w.logger.Debug("deleting", "target", target)
	err := w.invokeDelete(ctx, target)

	w.mu.Lock()
	if err != nil {
		failed := &DeleteFailedError{Target: target, Cause: err}
		w.outcome = OutcomeFailed
		w.err = failed
		w.mu.Unlock()

		w.logger.Warn("delete failed", "target", target, "err", err)
		return failed
	}

	w.outcome = OutcomeSucceeded
	w.open = false
	w.reason = CloseReasonDeleted
	w.mu.Unlock()

	w.logger.Debug("deleted", "target", target)
	w.onClose()
	return nil
}

// invokeDelete runs the delete operation, turning a panic into an error so
// the workflow never stays Pending.
func (w *Workflow) invokeDelete(ctx context.Context, target string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("delete operation panicked: %v", r)
		}
	}()
	return w.deleteFn(ctx, target)
}

// Cancel closes the workflow without deleting anything.
func (w *Workflow) Cancel() error {
	return w.closeWith(CloseReasonCancelled)
}

// Close dismisses the workflow without deleting anything. It has the same
// contract as Cancel.
func (w *Workflow) Close() error {
	return w.closeWith(CloseReasonDismissed)
}

func (w *Workflow) closeWith(reason CloseReason) error {
	w.mu.Lock()
	if !w.open {
		w.mu.Unlock()
		return ErrNotOpen
	}
	if w.outcome == OutcomePending {
		w.mu.Unlock()
		return ErrDeletePending
	}
	w.open = false
	w.reason = reason
	target := w.target
	w.mu.Unlock()

	w.logger.Debug("deletion dialog closed", "target", target, "reason", reason.String())
	w.onClose()
	return nil
}

// IsOpen reports whether the workflow is open.
func (w *Workflow) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// Target returns the name that must be typed.
func (w *Workflow) Target() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.target
}

// EnteredText returns the current entered text.
func (w *Workflow) EnteredText() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entered
}

// Matches reports whether the entered text is exactly the target.
func (w *Workflow) Matches() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entered == w.target
}

// CanCommit reports whether the commit control is enabled.
func (w *Workflow) CanCommit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open && w.entered == w.target && w.outcome != OutcomePending
}

// Outcome returns the state of the current delete attempt.
func (w *Workflow) Outcome() Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.outcome
}

// Err returns the last delete failure, if the outcome is OutcomeFailed.
func (w *Workflow) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// AlertVisible reports whether the error surface should be displayed.
func (w *Workflow) AlertVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open && w.outcome == OutcomeFailed
}

// CloseReason returns how the workflow was last closed.
func (w *Workflow) CloseReason() CloseReason {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reason
}
