package dialog

import "errors"

// Error definitions for dialog package.
var (
	ErrDialogFailed = errors.New("deletion dialog failed")
)
