// Package dialog hosts a deletion.Workflow in front of a user: either as an
// interactive terminal dialog or as a plain line prompt.
package dialog

import (
	"context"

	"github.com/lerenn/kws/pkg/deletion"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=dialog.go -destination=mocks/dialog.gen.go -package=mocks

// Result summarizes how a dialog session ended.
type Result struct {
	// Deleted is true when the delete operation succeeded.
	Deleted bool
	// Reason is how the workflow was closed.
	Reason deletion.CloseReason
	// LastErr is the last delete failure shown to the user, if any.
	LastErr error
}

// Dialog opens wf for target and lets the user confirm, retry or cancel
// until the workflow closes.
type Dialog interface {
	Run(ctx context.Context, wf *deletion.Workflow, target string) (Result, error)
}

func resultOf(wf *deletion.Workflow) Result {
	return Result{
		Deleted: wf.Outcome() == deletion.OutcomeSucceeded,
		Reason:  wf.CloseReason(),
		LastErr: wf.Err(),
	}
}
