// Package dependencies provides a centralized dependency container for the KWS application.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/kws/pkg/dialog"
	"github.com/lerenn/kws/pkg/hooks"
	"github.com/lerenn/kws/pkg/logger"
	"github.com/lerenn/kws/pkg/prompt"
	"github.com/lerenn/kws/pkg/resource"
)

// Validation errors for missing dependencies.
var (
	ErrClientMissing      = errors.New("resource client dependency is required but not set")
	ErrDialogMissing      = errors.New("dialog dependency is required but not set")
	ErrLoggerMissing      = errors.New("logger dependency is required but not set")
	ErrPromptMissing      = errors.New("prompt dependency is required but not set")
	ErrHookManagerMissing = errors.New("hook manager dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	Client      resource.Client
	Dialog      dialog.Dialog
	Logger      logger.Logger
	Prompt      prompt.Prompter
	HookManager hooks.HookManagerInterface
}

// New creates a new Dependencies instance with sensible defaults.
// The client needs a server, so it is left nil.
func New() *Dependencies {
	p := prompt.NewPrompt()
	return &Dependencies{
		Dialog:      dialog.NewTUI(),
		Logger:      logger.NewNoopLogger(),
		Prompt:      p,
		HookManager: hooks.NewHookManager(),
	}
}

// WithClient sets the resource client and returns the instance for chaining.
func (d *Dependencies) WithClient(client resource.Client) *Dependencies {
	d.Client = client
	return d
}

// WithDialog sets the deletion dialog and returns the instance for chaining.
func (d *Dependencies) WithDialog(dlg dialog.Dialog) *Dependencies {
	d.Dialog = dlg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(l logger.Logger) *Dependencies {
	d.Logger = l
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(p prompt.Prompter) *Dependencies {
	d.Prompt = p
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.HookManagerInterface) *Dependencies {
	d.HookManager = hm
	return d
}

// Validate checks that every dependency needed by the workspace manager is set.
func (d *Dependencies) Validate() error {
	switch {
	case d.Client == nil:
		return ErrClientMissing
	case d.Dialog == nil:
		return ErrDialogMissing
	case d.Logger == nil:
		return ErrLoggerMissing
	case d.Prompt == nil:
		return ErrPromptMissing
	case d.HookManager == nil:
		return ErrHookManagerMissing
	}
	return nil
}
