package dialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lerenn/kws/pkg/deletion"
)

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 2).
			Width(64)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("196")).
			PaddingLeft(1)
	enabledButtonStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("160")).
				Padding(0, 1)
	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Background(lipgloss.Color("236")).
				Padding(0, 1)
	secondaryButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type tuiDialog struct {
	options []tea.ProgramOption
}

// NewTUI creates a Dialog rendered as a Bubble Tea program. Options are
// passed to the program, e.g. to redirect its input and output.
func NewTUI(options ...tea.ProgramOption) Dialog {
	return &tuiDialog{options: options}
}

// Run opens the workflow and blocks until the user closes the dialog or the
// workspace is deleted.
func (d *tuiDialog) Run(ctx context.Context, wf *deletion.Workflow, target string) (Result, error) {
	if err := wf.Open(target); err != nil {
		return Result{}, err
	}

	m := newModel(ctx, wf)
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, d.options...)
	if _, err := tea.NewProgram(m, options...).Run(); err != nil {
		// A delete issued before the program stopped still owns the workflow
		m.waitForDelete()
		_ = wf.Close()
		return resultOf(wf), fmt.Errorf("%w: %w", ErrDialogFailed, err)
	}

	// The program can only end while the workflow is open through an
	// external kill, which Run reports as an error above.
	return resultOf(wf), nil
}

// deleteResultMsg carries the result of a commit issued by the dialog.
type deleteResultMsg struct {
	err error
}

// model is the Bubble Tea model of the deletion dialog. The workflow is
// the single source of truth; the model only mirrors the text input.
type model struct {
	ctx      context.Context
	workflow *deletion.Workflow
	input    textinput.Model
	spinner  spinner.Model

	// deleting is closed once the delete started by the last commit returns.
	deleting chan struct{}
}

func newModel(ctx context.Context, wf *deletion.Workflow) *model {
	input := textinput.New()
	input.Placeholder = wf.Target()
	input.Prompt = "> "
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	return &model{
		ctx:      ctx,
		workflow: wf,
		input:    input,
		spinner:  s,
	}
}

// Init initializes the model.
func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case deleteResultMsg:
		return m, m.quitIfClosed()

	case spinner.TickMsg:
		if m.workflow.Outcome() == deletion.OutcomePending {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyMsg handles keyboard input.
func (m *model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		_ = m.workflow.Close()
		return m, m.quitIfClosed()
	case tea.KeyEsc:
		_ = m.workflow.Cancel()
		return m, m.quitIfClosed()
	case tea.KeyEnter:
		// Begin runs in the event loop so a second enter sees Pending
		run, err := m.workflow.Begin()
		if err != nil {
			return m, nil
		}
		return m, tea.Batch(m.commit(run), m.spinner.Tick)
	}

	// The input is frozen while the delete is in flight
	if m.workflow.Outcome() == deletion.OutcomePending {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.workflow.SetEnteredText(m.input.Value())
	return m, cmd
}

// commit starts the delete outside the UI loop and returns the command
// reporting its result.
func (m *model) commit(run func(ctx context.Context) error) tea.Cmd {
	result := make(chan error, 1)
	done := make(chan struct{})
	m.deleting = done

	go func() {
		defer close(done)
		result <- run(m.ctx)
	}()

	return func() tea.Msg {
		return deleteResultMsg{err: <-result}
	}
}

// waitForDelete blocks until the last started delete has returned.
func (m *model) waitForDelete() {
	if m.deleting != nil {
		<-m.deleting
	}
}

func (m *model) quitIfClosed() tea.Cmd {
	if m.workflow.IsOpen() {
		return nil
	}
	return tea.Quit
}

// View renders the dialog.
func (m *model) View() string {
	if !m.workflow.IsOpen() {
		return ""
	}

	target := m.workflow.Target()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Delete workspace?"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("The workspace %s and everything it contains will be deleted.\n", target))
	b.WriteString("This action cannot be undone.\n\n")
	b.WriteString(fmt.Sprintf("Type %s to confirm:\n", target))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.workflow.AlertVisible() {
		b.WriteString(alertStyle.Render(fmt.Sprintf("Error: %v", m.workflow.Err())))
		b.WriteString("\n\n")
	}

	b.WriteString(m.buttonsView())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter delete • esc cancel • ctrl+c close"))

	return dialogStyle.Render(b.String())
}

func (m *model) buttonsView() string {
	if m.workflow.Outcome() == deletion.OutcomePending {
		return fmt.Sprintf("%s Deleting...", m.spinner.View())
	}

	deleteButton := disabledButtonStyle.Render("Delete")
	if m.workflow.CanCommit() {
		deleteButton = enabledButtonStyle.Render("Delete")
	}
	return deleteButton + "  " + secondaryButtonStyle.Render("Cancel")
}
