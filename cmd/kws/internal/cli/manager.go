package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/lerenn/kws/pkg/config"
	"github.com/lerenn/kws/pkg/dependencies"
	"github.com/lerenn/kws/pkg/dialog"
	defaulthooks "github.com/lerenn/kws/pkg/hooks/default"
	"github.com/lerenn/kws/pkg/logger"
	"github.com/lerenn/kws/pkg/prompt"
	"github.com/lerenn/kws/pkg/resource"
	"github.com/lerenn/kws/pkg/workspaces"
	"github.com/mattn/go-isatty"
)

// NewManager creates a workspaces Manager wired from the configuration file.
func NewManager(out io.Writer) (workspaces.Manager, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	l := logger.New(logger.Options{
		Level:  LogLevel(cfg),
		Output: os.Stderr,
		JSON:   LogJSON,
	})

	client, err := NewClient(cfg, l)
	if err != nil {
		return nil, err
	}

	hm, err := defaulthooks.NewDefaultHooksManager(l)
	if err != nil {
		return nil, fmt.Errorf("failed to register default hooks: %w", err)
	}

	p := prompt.NewPrompt()

	return workspaces.NewManager(workspaces.NewManagerParams{
		Dependencies: dependencies.New().
			WithClient(client).
			WithDialog(NewDialog(os.Stdin, out, p)).
			WithPrompt(p).
			WithHookManager(hm).
			WithLogger(l),
	})
}

// NewClient creates the kcp client described by cfg.
func NewClient(cfg config.Config, l logger.Logger) (resource.Client, error) {
	token, err := cfg.ResolveToken()
	if err != nil {
		return nil, err
	}

	return resource.NewClient(resource.NewClientParams{
		Server:                cfg.Server,
		Token:                 token,
		InsecureSkipTLSVerify: cfg.InsecureSkipTLSVerify,
		Timeout:               cfg.Timeout,
		Logger:                l,
	})
}

// NewDialog returns the terminal dialog when in is a terminal and the line dialog otherwise.
func NewDialog(in *os.File, out io.Writer, p prompt.Prompter) dialog.Dialog {
	if isTerminal(in) {
		return dialog.NewTUI()
	}
	return dialog.NewLine(p, out)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
