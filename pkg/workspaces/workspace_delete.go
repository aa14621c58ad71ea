package workspaces

import (
	"context"
	"fmt"
	"regexp"

	"github.com/lerenn/kws/pkg/deletion"
	"github.com/lerenn/kws/pkg/hooks"
	"github.com/lerenn/kws/pkg/resource"
	"github.com/lerenn/kws/pkg/workspaces/consts"
)

const maxWorkspaceNameLength = 63

var workspaceNamePattern = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`)

// DeleteWorkspaceParams contains parameters for DeleteWorkspace.
type DeleteWorkspaceParams struct {
	// WorkspaceName is the workspace to delete. When empty, the user picks one.
	WorkspaceName string
	// Force skips the confirmation dialog.
	Force bool
}

// DeleteWorkspace deletes a workspace, asking for confirmation unless forced.
func (m *realManager) DeleteWorkspace(ctx context.Context, params DeleteWorkspaceParams) error {
	return m.executeWithHooks(consts.DeleteWorkspace, map[string]interface{}{
		"workspace_name": params.WorkspaceName,
		"force":          params.Force,
	}, func(hctx *hooks.HookContext) error {
		name, err := m.deleteWorkspace(ctx, params)
		hctx.Results["workspace_name"] = name
		return err
	})
}

func (m *realManager) deleteWorkspace(ctx context.Context, params DeleteWorkspaceParams) (string, error) {
	name := params.WorkspaceName
	if name == "" {
		selected, err := m.selectWorkspace(ctx)
		if err != nil {
			return "", err
		}
		name = selected
	}

	if err := validateWorkspaceName(name); err != nil {
		return name, err
	}

	deleteFn := resource.DeleteFunc(m.deps.Client, resource.WorkspaceModel)

	if params.Force {
		m.deps.Logger.Debug("deleting workspace without confirmation", "workspace", name)
		if err := deleteFn(ctx, name); err != nil {
			return name, fmt.Errorf("failed to delete workspace '%s': %w", name, err)
		}
		return name, nil
	}

	wf := deletion.NewWorkflow(deletion.NewWorkflowParams{
		Delete: deleteFn,
		Logger: m.deps.Logger,
	})

	result, err := m.deps.Dialog.Run(ctx, wf, name)
	if err != nil {
		return name, err
	}

	if !result.Deleted {
		if result.LastErr != nil {
			return name, fmt.Errorf("%w: %w", ErrDeletionCancelled, result.LastErr)
		}
		return name, ErrDeletionCancelled
	}

	m.deps.Logger.Debug("workspace deleted", "workspace", name)
	return name, nil
}

// selectWorkspace lets the user pick the workspace to delete.
func (m *realManager) selectWorkspace(ctx context.Context) (string, error) {
	names, err := m.listWorkspaces(ctx)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", ErrNoWorkspaces
	}
	return m.deps.Prompt.PromptSelectWorkspace(names)
}

func validateWorkspaceName(name string) error {
	if len(name) > maxWorkspaceNameLength {
		return fmt.Errorf("%w: '%s' is longer than %d characters", ErrInvalidWorkspaceName, name, maxWorkspaceNameLength)
	}
	if !workspaceNamePattern.MatchString(name) {
		return fmt.Errorf("%w: '%s' must consist of lower case alphanumeric characters or '-', "+
			"and must start and end with an alphanumeric character", ErrInvalidWorkspaceName, name)
	}
	return nil
}
