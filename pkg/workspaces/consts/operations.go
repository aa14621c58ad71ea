// Package consts holds the operation names hooks are registered against.
package consts

// Operation names.
const (
	ListWorkspaces  = "list_workspaces"
	DeleteWorkspace = "delete_workspace"
)

// AllOperations returns every operation name.
func AllOperations() []string {
	return []string{ListWorkspaces, DeleteWorkspace}
}
