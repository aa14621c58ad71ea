package deletion

import (
	"errors"
	"fmt"
)

// Error definitions for deletion package.
var (
	// Workflow lifecycle errors.
	ErrEmptyTarget = errors.New("target name cannot be empty")
	ErrAlreadyOpen = errors.New("deletion dialog is already open for another target")
	ErrNotOpen     = errors.New("deletion dialog is not open")

	// Commit gating errors.
	ErrNameMismatch     = errors.New("entered name does not match")
	ErrCommitInProgress = errors.New("deletion already in progress")
	ErrDeletePending    = errors.New("cannot close while deletion is in progress")

	// ErrDeleteFailed is matched by every DeleteFailedError.
	ErrDeleteFailed = errors.New("delete failed")
)

// DeleteFailedError is the only error kind produced by a commit: the delete
// operation for Target returned Cause.
type DeleteFailedError struct {
	Target string
	Cause  error
}

func (e *DeleteFailedError) Error() string {
	return fmt.Sprintf("failed to delete %q: %v", e.Target, e.Cause)
}

func (e *DeleteFailedError) Unwrap() error {
	return e.Cause
}

// Is reports ErrDeleteFailed as a match so callers do not need errors.As.
func (e *DeleteFailedError) Is(target error) bool {
	return target == ErrDeleteFailed
}
