//go:build unit

package deletion

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder counts calls made to the workflow collaborators.
type recorder struct {
	mu          sync.Mutex
	deleteCalls []string
	closeCalls  int
	deleteErr   error
}

func (r *recorder) delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteCalls = append(r.deleteCalls, name)
	return r.deleteErr
}

func (r *recorder) close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closeCalls++
}

func (r *recorder) deletes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.deleteCalls...)
}

func (r *recorder) closes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closeCalls
}

func newOpenWorkflow(t *testing.T, rec *recorder) *Workflow {
	t.Helper()
	w := NewWorkflow(NewWorkflowParams{Delete: rec.delete, OnClose: rec.close})
	require.NoError(t, w.Open("my-workspace"))
	return w
}

func TestWorkflow_CommitDisabledUnlessExactMatch(t *testing.T) {
	tests := []struct {
		name     string
		entered  string
		expected bool
	}{
		{name: "empty entered name", entered: "", expected: false},
		{name: "incorrect name", entered: "notCorrectName", expected: false},
		{name: "case differs", entered: "My-Workspace", expected: false},
		{name: "leading space", entered: " my-workspace", expected: false},
		{name: "trailing newline", entered: "my-workspace\n", expected: false},
		{name: "prefix only", entered: "my-work", expected: false},
		{name: "exact match", entered: "my-workspace", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			w := newOpenWorkflow(t, rec)

			w.SetEnteredText(tt.entered)

			assert.Equal(t, tt.expected, w.CanCommit())
			assert.Equal(t, tt.expected, w.Matches())
			assert.Equal(t, tt.entered, w.EnteredText())
		})
	}
}

func TestWorkflow_OpenStartsEmpty(t *testing.T) {
	rec := &recorder{}
	w := newOpenWorkflow(t, rec)

	assert.True(t, w.IsOpen())
	assert.Equal(t, "my-workspace", w.Target())
	assert.Equal(t, "", w.EnteredText())
	assert.Equal(t, OutcomeIdle, w.Outcome())
	assert.False(t, w.CanCommit())
	assert.False(t, w.AlertVisible())
}

func TestWorkflow_OpenRejectsEmptyTarget(t *testing.T) {
	w := NewWorkflow(NewWorkflowParams{Delete: (&recorder{}).delete})

	err := w.Open("")

	assert.ErrorIs(t, err, ErrEmptyTarget)
	assert.False(t, w.IsOpen())
}

func TestWorkflow_ReopenClearsEnteredText(t *testing.T) {
	rec := &recorder{}
	w := newOpenWorkflow(t, rec)

	w.SetEnteredText("notCorrectName")
	assert.Equal(t, "notCorrectName", w.EnteredText())

	require.NoError(t, w.Close())
	require.NoError(t, w.Open("my-workspace"))

	assert.Equal(t, "", w.EnteredText())
	assert.False(t, w.CanCommit())
}

func TestWorkflow_OpenWhileOpen(t *testing.T) {
	rec := &recorder{}
	w := newOpenWorkflow(t, rec)
	w.SetEnteredText("my-work")

	// Same target: not a transition, nothing is reset
	require.NoError(t, w.Open("my-workspace"))
	assert.Equal(t, "my-work", w.EnteredText())

	// Different target is refused
	err := w.Open("other-workspace")
	assert.ErrorIs(t, err, ErrAlreadyOpen)
	assert.Equal(t, "my-workspace", w.Target())
}

func TestWorkflow_CommitSuccess(t *testing.T) {
	rec := &recorder{}
	w := newOpenWorkflow(t, rec)
	w.SetEnteredText("my-workspace")

	err := w.Commit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"my-workspace"}, rec.deletes())
	assert.Equal(t, 1, rec.closes())
	assert.Equal(t, OutcomeSucceeded, w.Outcome())
	assert.Equal(t, CloseReasonDeleted, w.CloseReason())
	assert.False(t, w.IsOpen())
	assert.False(t, w.AlertVisible())
	assert.NoError(t, w.Err())
}

func TestWorkflow_CommitFailure(t *testing.T) {
	cause := errors.New("test error")
	rec := &recorder{deleteErr: cause}
	w := newOpenWorkflow(t, rec)
	w.SetEnteredText("my-workspace")

	err := w.Commit(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeleteFailed)
	assert.ErrorIs(t, err, cause)
	var failed *DeleteFailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, "my-workspace", failed.Target)

	assert.Equal(t, []string{"my-workspace"}, rec.deletes())
	assert.Equal(t, 0, rec.closes())
	assert.Equal(t, OutcomeFailed, w.Outcome())
	assert.True(t, w.IsOpen())
	assert.True(t, w.AlertVisible())
	assert.ErrorIs(t, w.Err(), cause)
	assert.Contains(t, w.Err().Error(), "test error")

	// Entered text survives so the user can retry without retyping
	assert.Equal(t, "my-workspace", w.EnteredText())
	assert.True(t, w.CanCommit())
}

func TestWorkflow_RetryAfterFailure(t *testing.T) {
	rec := &recorder{deleteErr: errors.New("test error")}
	w := newOpenWorkflow(t, rec)
	w.SetEnteredText("my-workspace")

	require.Error(t, w.Commit(context.Background()))

	rec.mu.Lock()
	rec.deleteErr = nil
	rec.mu.Unlock()

	require.NoError(t, w.Commit(context.Background()))
	assert.Len(t, rec.deletes(), 2)
	assert.Equal(t, 1, rec.closes())
	assert.Equal(t, OutcomeSucceeded, w.Outcome())
}

func TestWorkflow_CommitRejectedWithoutMatch(t *testing.T) {
	tests := []struct {
		name    string
		entered string
	}{
		{name: "empty", entered: ""},
		{name: "wrong name", entered: "notCorrectName"},
		{name: "case differs", entered: "My-Workspace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			w := newOpenWorkflow(t, rec)
			w.SetEnteredText(tt.entered)

			err := w.Commit(context.Background())

			assert.ErrorIs(t, err, ErrNameMismatch)
			assert.Empty(t, rec.deletes())
			assert.Equal(t, 0, rec.closes())
			assert.Equal(t, OutcomeIdle, w.Outcome())
		})
	}
}

func TestWorkflow_CommitWhenClosed(t *testing.T) {
	rec := &recorder{}
	w := NewWorkflow(NewWorkflowParams{Delete: rec.delete, OnClose: rec.close})

	err := w.Commit(context.Background())

	assert.ErrorIs(t, err, ErrNotOpen)
	assert.Empty(t, rec.deletes())
}

func TestWorkflow_CancelAndClose(t *testing.T) {
	tests := []struct {
		name   string
		action func(w *Workflow) error
		reason CloseReason
	}{
		{name: "cancel", action: (*Workflow).Cancel, reason: CloseReasonCancelled},
		{name: "close", action: (*Workflow).Close, reason: CloseReasonDismissed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			w := newOpenWorkflow(t, rec)
			w.SetEnteredText("my-workspace")

			require.NoError(t, tt.action(w))

			assert.Empty(t, rec.deletes())
			assert.Equal(t, 1, rec.closes())
			assert.False(t, w.IsOpen())
			assert.Equal(t, tt.reason, w.CloseReason())

			// A second close on a closed workflow does not call back again
			assert.ErrorIs(t, tt.action(w), ErrNotOpen)
			assert.Equal(t, 1, rec.closes())
		})
	}
}

func TestWorkflow_CancelAfterFailure(t *testing.T) {
	rec := &recorder{deleteErr: errors.New("test error")}
	w := newOpenWorkflow(t, rec)
	w.SetEnteredText("my-workspace")
	require.Error(t, w.Commit(context.Background()))

	require.NoError(t, w.Cancel())
	assert.Equal(t, 1, rec.closes())

	// Reopening resets both the outcome and the entered text
	require.NoError(t, w.Open("my-workspace"))
	assert.Equal(t, OutcomeIdle, w.Outcome())
	assert.NoError(t, w.Err())
	assert.Equal(t, "", w.EnteredText())
}

func TestWorkflow_SingleDeleteInFlight(t *testing.T) {
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex
	closes := 0

	w := NewWorkflow(NewWorkflowParams{
		Delete: func(_ context.Context, _ string) error {
			mu.Lock()
			calls++
			mu.Unlock()
			<-release
			return nil
		},
		OnClose: func() {
			mu.Lock()
			closes++
			mu.Unlock()
		},
	})
	require.NoError(t, w.Open("my-workspace"))
	w.SetEnteredText("my-workspace")

	done := make(chan error, 1)
	go func() { done <- w.Commit(context.Background()) }()

	assert.Eventually(t, func() bool {
		return w.Outcome() == OutcomePending
	}, time.Second, time.Millisecond)

	// While pending: commit control disabled, extra commits are no-ops
	assert.False(t, w.CanCommit())
	assert.ErrorIs(t, w.Commit(context.Background()), ErrCommitInProgress)

	// Closing is refused and the close callback does not run
	assert.ErrorIs(t, w.Cancel(), ErrDeletePending)
	assert.ErrorIs(t, w.Close(), ErrDeletePending)
	mu.Lock()
	assert.Equal(t, 0, closes)
	mu.Unlock()

	close(release)
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, closes)
}

func TestWorkflow_BeginMarksPendingBeforeDelete(t *testing.T) {
	rec := &recorder{deleteErr: errors.New("test error")}
	w := newOpenWorkflow(t, rec)
	w.SetEnteredText("my-workspace")

	run, err := w.Begin()
	require.NoError(t, err)

	// The delete has not started, but a second commit is already refused
	assert.Equal(t, OutcomePending, w.Outcome())
	assert.False(t, w.CanCommit())
	_, err = w.Begin()
	assert.ErrorIs(t, err, ErrCommitInProgress)
	assert.Empty(t, rec.deletes())

	assert.ErrorIs(t, run(context.Background()), ErrDeleteFailed)
	assert.Equal(t, []string{"my-workspace"}, rec.deletes())
	assert.True(t, w.CanCommit())
}

func TestWorkflow_BeginRefusals(t *testing.T) {
	tests := []struct {
		name     string
		open     bool
		entered  string
		expected error
	}{
		{name: "closed", expected: ErrNotOpen},
		{name: "mismatch", open: true, entered: "my-work", expected: ErrNameMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			w := NewWorkflow(NewWorkflowParams{Delete: rec.delete, OnClose: rec.close})
			if tt.open {
				require.NoError(t, w.Open("my-workspace"))
			}
			w.SetEnteredText(tt.entered)

			run, err := w.Begin()

			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, run)
			assert.NotEqual(t, OutcomePending, w.Outcome())
		})
	}
}

func TestWorkflow_DeletePanicBecomesFailure(t *testing.T) {
	closes := 0
	w := NewWorkflow(NewWorkflowParams{
		Delete:  func(_ context.Context, _ string) error { panic("boom") },
		OnClose: func() { closes++ },
	})
	require.NoError(t, w.Open("my-workspace"))
	w.SetEnteredText("my-workspace")

	err := w.Commit(context.Background())

	assert.ErrorIs(t, err, ErrDeleteFailed)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, OutcomeFailed, w.Outcome())
	assert.Equal(t, 0, closes)
}

func TestWorkflow_ContextIsForwarded(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "value")
	var got interface{}

	w := NewWorkflow(NewWorkflowParams{
		Delete: func(ctx context.Context, _ string) error {
			got = ctx.Value(key{})
			return nil
		},
	})
	require.NoError(t, w.Open("my-workspace"))
	w.SetEnteredText("my-workspace")

	require.NoError(t, w.Commit(ctx))
	assert.Equal(t, "value", got)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "idle", OutcomeIdle.String())
	assert.Equal(t, "pending", OutcomePending.String())
	assert.Equal(t, "succeeded", OutcomeSucceeded.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
