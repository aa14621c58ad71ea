package dialog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lerenn/kws/pkg/deletion"
	"github.com/lerenn/kws/pkg/prompt"
)

type lineDialog struct {
	prompt prompt.Prompter
	out    io.Writer
}

// NewLine creates a Dialog that reads the confirmation from a line prompt.
// It is meant for non interactive terminals.
func NewLine(p prompt.Prompter, out io.Writer) Dialog {
	return &lineDialog{prompt: p, out: out}
}

// Run asks for the name once; a mismatch cancels. After a failed delete the
// user may retry with the name already entered.
func (d *lineDialog) Run(ctx context.Context, wf *deletion.Workflow, target string) (Result, error) {
	if err := wf.Open(target); err != nil {
		return Result{}, err
	}

	fmt.Fprintf(d.out, "Delete workspace %q?\n", target)
	fmt.Fprintln(d.out, "The workspace and everything it contains will be deleted. This action cannot be undone.")

	text, err := d.prompt.PromptForText(fmt.Sprintf("Type %q to confirm: ", target))
	if err != nil {
		_ = wf.Close()
		return Result{}, fmt.Errorf("%w: %w", ErrDialogFailed, err)
	}
	wf.SetEnteredText(text)

	if !wf.CanCommit() {
		fmt.Fprintln(d.out, "The entered name does not match, nothing was deleted.")
		_ = wf.Cancel()
		return resultOf(wf), nil
	}

	for {
		err := wf.Commit(ctx)
		if err == nil {
			return resultOf(wf), nil
		}
		if !errors.Is(err, deletion.ErrDeleteFailed) {
			_ = wf.Cancel()
			return resultOf(wf), fmt.Errorf("%w: %w", ErrDialogFailed, err)
		}

		fmt.Fprintf(d.out, "Error: %v\n", wf.Err())

		retry, err := d.prompt.PromptForConfirmation("Retry?", false)
		if err != nil {
			_ = wf.Cancel()
			return resultOf(wf), fmt.Errorf("%w: %w", ErrDialogFailed, err)
		}
		if !retry {
			_ = wf.Cancel()
			return resultOf(wf), nil
		}
	}
}
