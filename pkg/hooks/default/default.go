// Package defaulthooks provides default hook implementations for KWS.
package defaulthooks

import (
	"github.com/lerenn/kws/pkg/hooks"
	"github.com/lerenn/kws/pkg/logger"
	"github.com/lerenn/kws/pkg/workspaces/consts"
)

// NewDefaultHooksManager creates a new default hooks manager logging every workspace operation.
func NewDefaultHooksManager(l logger.Logger) (hooks.HookManagerInterface, error) {
	hm := hooks.NewHookManager()

	if err := hooks.NewLoggingHook(l).RegisterForOperations(hm, consts.AllOperations()...); err != nil {
		return nil, err
	}

	return hm, nil
}
