package workspaces

import (
	"context"
	"fmt"

	"github.com/lerenn/kws/pkg/hooks"
	"github.com/lerenn/kws/pkg/resource"
	"github.com/lerenn/kws/pkg/workspaces/consts"
)

// ListWorkspaces lists the names of the workspaces visible from the configured server.
func (m *realManager) ListWorkspaces(ctx context.Context) ([]string, error) {
	var names []string
	err := m.executeWithHooks(consts.ListWorkspaces, map[string]interface{}{}, func(hctx *hooks.HookContext) error {
		var err error
		names, err = m.listWorkspaces(ctx)
		if err == nil {
			hctx.Results["workspaces"] = names
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (m *realManager) listWorkspaces(ctx context.Context) ([]string, error) {
	names, err := m.deps.Client.List(ctx, resource.WorkspaceModel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListWorkspaces, err)
	}
	m.deps.Logger.Debug("listed workspaces", "count", len(names))
	return names, nil
}
