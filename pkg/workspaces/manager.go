package workspaces

import (
	"context"
	"fmt"

	"github.com/lerenn/kws/pkg/dependencies"
	"github.com/lerenn/kws/pkg/hooks"
	"github.com/lerenn/kws/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides workspace listing and deletion.
type Manager interface {
	// ListWorkspaces lists the names of the workspaces visible from the configured server.
	ListWorkspaces(ctx context.Context) ([]string, error)
	// DeleteWorkspace deletes a workspace, asking for confirmation unless forced.
	DeleteWorkspace(ctx context.Context, params DeleteWorkspaceParams) error
	// SetLogger sets the logger for this manager instance.
	SetLogger(l logger.Logger)
}

// NewManagerParams contains parameters for creating a new Manager instance.
type NewManagerParams struct {
	Dependencies *dependencies.Dependencies
}

type realManager struct {
	deps *dependencies.Dependencies
}

// NewManager creates a new Manager instance.
func NewManager(params NewManagerParams) (Manager, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realManager{
		deps: deps,
	}, nil
}

// SetLogger sets the logger for this Manager instance.
func (m *realManager) SetLogger(l logger.Logger) {
	m.deps.Logger = l
}

// executeWithHooks executes an operation with pre and post hooks.
func (m *realManager) executeWithHooks(
	operationName string, params map[string]interface{}, operation func(ctx *hooks.HookContext) error) error {
	ctx := &hooks.HookContext{
		OperationName: operationName,
		Parameters:    params,
		Results:       make(map[string]interface{}),
		Metadata:      make(map[string]interface{}),
	}
	if err := m.executePreHooks(operationName, ctx); err != nil {
		return err
	}

	var resultErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operationName, r)
			}
		}()
		resultErr = operation(ctx)
	}()

	ctx.Error = resultErr
	if resultErr == nil {
		ctx.Results["success"] = true
	}

	if hookErr := m.executeHooks(operationName, ctx, resultErr); hookErr != nil {
		return hookErr
	}
	return resultErr
}

// executeHooks executes post-hooks or error-hooks based on the operation result.
func (m *realManager) executeHooks(operationName string, ctx *hooks.HookContext, resultErr error) error {
	if m.deps.HookManager == nil {
		return nil
	}

	if resultErr != nil {
		return m.deps.HookManager.ExecuteErrorHooks(operationName, ctx)
	}
	return m.deps.HookManager.ExecutePostHooks(operationName, ctx)
}

func (m *realManager) executePreHooks(operationName string, ctx *hooks.HookContext) error {
	if m.deps.HookManager == nil {
		return nil
	}
	return m.deps.HookManager.ExecutePreHooks(operationName, ctx)
}
