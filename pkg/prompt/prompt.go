package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptForText prompts the user for one line of text. Only the line
	// terminator is removed; the rest is returned as typed.
	PromptForText(message string) (string, error)

	// PromptSelectWorkspace prompts the user to select a workspace from a list.
	PromptSelectWorkspace(names []string) (string, error)
}

type realPrompt struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompt creates a new Prompt instance reading stdin and writing stdout.
func NewPrompt() Prompter {
	return NewPromptWithIO(os.Stdin, os.Stdout)
}

// NewPromptWithIO creates a new Prompt instance on the given streams.
func NewPromptWithIO(in io.Reader, out io.Writer) Prompter {
	return &realPrompt{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Fprintf(p.writer, "%s %s: ", message, defaultText)

	input, err := p.readLine()
	if err != nil {
		return false, err
	}

	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptForText prompts the user for one line of text.
func (p *realPrompt) PromptForText(message string) (string, error) {
	fmt.Fprint(p.writer, message)
	return p.readLine()
}

// PromptSelectWorkspace prompts the user to select a workspace from a list.
func (p *realPrompt) PromptSelectWorkspace(names []string) (string, error) {
	if len(names) == 0 {
		return "", ErrNoChoices
	}

	// Use Bubble Tea selector for interactive selection
	return promptSelectBubbleTea(names)
}

// readLine reads up to the next newline and strips the line terminator.
// A final line without terminator is accepted.
func (p *realPrompt) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	input = strings.TrimSuffix(input, "\n")
	input = strings.TrimSuffix(input, "\r")
	return input, nil
}
