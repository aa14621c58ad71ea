package hooks

import (
	"github.com/lerenn/kws/pkg/logger"
)

// LoggingHook provides logging functionality for all operations.
type LoggingHook struct {
	logger logger.Logger
}

// NewLoggingHook creates a new LoggingHook instance.
func NewLoggingHook(l logger.Logger) *LoggingHook {
	return &LoggingHook{
		logger: l,
	}
}

// Name returns the hook name.
func (h *LoggingHook) Name() string {
	return "logging"
}

// Priority returns the hook priority (lower numbers execute first).
func (h *LoggingHook) Priority() int {
	return 100
}

// PreExecute logs the start of an operation.
func (h *LoggingHook) PreExecute(ctx *HookContext) error {
	h.logger.Debug("starting operation", "operation", ctx.OperationName, "params", ctx.Parameters)
	return nil
}

// PostExecute logs the completion of an operation.
func (h *LoggingHook) PostExecute(ctx *HookContext) error {
	h.logger.Info("operation completed", "operation", ctx.OperationName, "results", ctx.Results)
	return nil
}

// OnError logs when an operation fails.
func (h *LoggingHook) OnError(ctx *HookContext) error {
	h.logger.Error("operation failed", "operation", ctx.OperationName, "err", ctx.Error)
	return nil
}

// RegisterForOperations registers the hook as pre, post and error hook of
// every given operation.
func (h *LoggingHook) RegisterForOperations(hm HookManagerInterface, operations ...string) error {
	for _, op := range operations {
		if err := hm.RegisterPreHook(op, h); err != nil {
			return err
		}
		if err := hm.RegisterPostHook(op, h); err != nil {
			return err
		}
		if err := hm.RegisterErrorHook(op, h); err != nil {
			return err
		}
	}
	return nil
}
