package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/progress"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/Urvashi-146/ThinkHire/internal/intake"
	"github.com/Urvashi-146/ThinkHire/internal/render"
	"github.com/Urvashi-146/ThinkHire/internal/starfield"
	"github.com/Urvashi-146/ThinkHire/internal/submission"
)

const (
	frameInterval = 100 * time.Millisecond
	starRows      = 4
	progressWidth = 40
)

var uiCmd = &cobra.Command{
	Use:   "ui [file]",
	Short: "Interactive résumé submission",
	Long: `Open the interactive submission screen.

Type or paste a file path (PDF or TXT), or paste résumé text, then press
Enter to upload. A file given on the command line is preselected.

Examples:
  thinkhire ui
  thinkhire ui resume.pdf --theme neon`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	theme, err := render.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}

	m := newUIModel(context.Background(), newController(newClient()), intake.NewAcquirer(cfg.MaxFileSize), theme, cfg.Timeout)
	if len(args) == 1 {
		if _, err := m.acq.Drop(args[0]); err != nil {
			m.notice = err.Error()
		}
	}

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("interactive UI error: %w", err)
	}

	if fm, ok := finalModel.(uiModel); ok {
		fm.ctrl.Reset()
	}
	return nil
}

// tickMsg advances animations and refreshes the elapsed time
type tickMsg time.Time

// cycleDoneMsg is sent when a submission cycle finishes
type cycleDoneMsg struct {
	state submission.State
}

// uiModel is the bubbletea model for the submission screen.
type uiModel struct {
	ctx      context.Context
	ctrl     *submission.Controller
	acq      *intake.Acquirer
	input    textinput.Model
	progress progress.Model
	renderer *render.Renderer
	stars    *starfield.Field
	timeout  time.Duration

	state  submission.State
	notice string

	quitting bool
}

func newUIModel(ctx context.Context, ctrl *submission.Controller, acq *intake.Acquirer, theme render.Theme, timeout time.Duration) uiModel {
	input := textinput.New()
	input.Placeholder = "path to resume.pdf / resume.txt, or paste résumé text"
	input.Prompt = "> "
	input.SetWidth(60)
	input.Focus()

	prog := progress.New(
		progress.WithDefaultBlend(),
		progress.WithWidth(progressWidth),
	)

	m := uiModel{
		ctx:      ctx,
		ctrl:     ctrl,
		acq:      acq,
		input:    input,
		progress: prog,
		renderer: render.NewRenderer(theme, 0),
		timeout:  timeout,
		state:    ctrl.State(),
	}
	if theme.Starfield {
		m.stars = starfield.New(80, starRows, 0, nil)
	}
	return m
}

// Init starts the animation clock.
func (m uiModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		m.progress.Init(),
		textinput.Blink,
	)
}

// Update handles messages and returns the updated model.
func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "ctrl+r":
			m.ctrl.Reset()
			m.acq.Clear()
			m.input.Reset()
			m.notice = ""
			m.state = m.ctrl.State()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.renderer.SetWidth(min(msg.Width-2, maxRenderWidth))
		m.input.SetWidth(max(msg.Width-4, 10))
		m.progress.SetWidth(min(max(msg.Width-20, 10), progressWidth))
		if m.stars != nil {
			m.stars.Resize(msg.Width, starRows, 0)
		}
		return m, nil

	case tickMsg:
		m.state = m.ctrl.State()
		if m.stars != nil {
			m.stars.Step()
		}
		return m, tickCmd()

	case cycleDoneMsg:
		// A superseded cycle reports the newer cycle's state; read the
		// controller rather than trusting msg order.
		m.state = m.ctrl.State()
		return m, nil

	case progress.FrameMsg:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit selects whatever was typed and starts a cycle. It does nothing
// while a request is in flight, matching the disabled action control.
func (m uiModel) submit() (tea.Model, tea.Cmd) {
	if m.state.Busy() {
		return m, nil
	}

	if value := strings.TrimSpace(m.input.Value()); value != "" {
		if err := m.selectInput(value); err != nil {
			if !intake.IsValidationError(err) {
				logger.Debug("selection failed", "input", value, "error", err)
			}
			m.notice = err.Error()
			return m, nil
		}
		m.input.Reset()
	}
	m.notice = ""

	cy, err := m.ctrl.Begin(m.ctx, m.acq.Take())
	m.state = m.ctrl.State()
	if err != nil {
		return m, nil
	}
	return m, runCycle(m.ctrl, cy)
}

// selectInput treats an existing file path, or a single line naming a .pdf
// or .txt file, as a dropped file and anything else as pasted text.
func (m uiModel) selectInput(value string) error {
	if looksLikePath(value) {
		_, err := m.acq.Drop(value)
		return err
	}
	_, err := m.acq.SelectText(m.input.Value())
	return err
}

func looksLikePath(value string) bool {
	if info, err := os.Stat(value); err == nil && !info.IsDir() {
		return true
	}
	return !strings.ContainsAny(value, "\n") && intake.IsSupportedFile(value)
}

// View renders the submission screen.
func (m uiModel) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	return v
}

func (m uiModel) renderContent() string {
	if m.quitting {
		return ""
	}

	view := render.Project(m.state)
	if m.acq.Current() != nil || m.state.Phase == submission.PhaseIdle {
		view.Candidate = m.acq.Label()
	}
	if m.notice != "" {
		view.Error = m.notice
	}

	var b strings.Builder
	if m.stars != nil {
		b.WriteString(m.renderer.Theme().StarStyle().Render(m.stars.Render()))
		b.WriteString("\n")
	}

	b.WriteString(m.renderer.Render(view))

	if view.Busy {
		elapsed := time.Since(m.state.StartedAt)
		b.WriteString(m.progress.ViewAs(elapsedFraction(elapsed, m.timeout)))
		fmt.Fprintf(&b, " %ds\n", int(elapsed.Seconds()))
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderer.Theme().HintStyle().Render("enter: upload • ctrl+r: reset • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// elapsedFraction maps time spent against the timeout onto the progress bar,
// never reaching 100% before the request resolves.
func elapsedFraction(elapsed, timeout time.Duration) float64 {
	if timeout <= 0 {
		return 0
	}
	return min(float64(elapsed)/float64(timeout), 0.99)
}

// runCycle sends the cycle on a command goroutine so Update never blocks.
func runCycle(ctrl *submission.Controller, cy *submission.Cycle) tea.Cmd {
	return func() tea.Msg {
		return cycleDoneMsg{state: ctrl.Run(cy)}
	}
}

// tickCmd returns a command that sends a tick after the frame interval.
func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
