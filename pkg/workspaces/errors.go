// Package workspaces lists and deletes kcp workspaces behind a typed-name confirmation.
package workspaces

import "errors"

// Error definitions for workspaces package.
var (
	ErrInvalidWorkspaceName = errors.New("invalid workspace name")
	ErrNoWorkspaces         = errors.New("no workspaces found")
	ErrDeletionCancelled    = errors.New("deletion cancelled by user")
	ErrListWorkspaces       = errors.New("failed to list workspaces")
)
