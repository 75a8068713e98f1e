package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/five82/flashcards/internal/completion"
	"github.com/five82/flashcards/internal/deck"
	"github.com/five82/flashcards/internal/flashcard"
	"github.com/five82/flashcards/internal/prefs"
	"github.com/five82/flashcards/internal/session"
	"github.com/five82/flashcards/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Completer completion.Completer
	Store     *state.Store
	Logger    *slog.Logger
	Timing    deck.Timing
	Source    flashcard.SourceMode
	ThemeName string
	// PrefsPath is where theme and source mode are saved. Empty disables saving.
	PrefsPath string
	// OnFailure is called once per failed generation.
	OnFailure func(session.Notice)
	// Schedule delivers msg after d. Defaults to tea.Tick.
	Schedule func(d time.Duration, msg tea.Msg) tea.Cmd
	// CopyToClipboard defaults to the system clipboard.
	CopyToClipboard func(string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	completer completion.Completer
	store     *state.Store
	logger    *slog.Logger
	prefsPath string
	schedule  func(time.Duration, tea.Msg) tea.Cmd
	copy      func(string) error

	machine *session.Machine

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	input    textarea.Model
	spinner  spinner.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	status   string

	health state.Snapshot
}

// New creates a new Bubble Tea model in create mode.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	schedule := opts.Schedule
	if schedule == nil {
		schedule = tickAfter
	}

	copyFn := opts.CopyToClipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Ocean"
	}

	machine := session.New(session.Options{
		Timing:    opts.Timing,
		Source:    opts.Source,
		OnFailure: opts.OnFailure,
		Logger:    logger,
	})

	theme := GetTheme(themeName)

	input := textarea.New()
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.Placeholder = machine.Source().Placeholder()
	input.SetHeight(8)
	input.Focus()

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))),
	)

	m := Model{
		ctx:       ctx,
		completer: opts.Completer,
		store:     opts.Store,
		logger:    logger,
		prefsPath: opts.PrefsPath,
		schedule:  schedule,
		copy:      copyFn,
		machine:   machine,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     input,
		spinner:   spin,
	}
	if m.store != nil {
		m.health = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.input.SetWidth(m.inputWidth())
		return m, nil

	case generatedMsg:
		return m.handleGenerated(msg)

	case stepMsg:
		return m.handleStep(msg)

	case spinner.TickMsg:
		if m.machine.Mode() != session.ModeLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.machine.Mode() == session.ModeCreate {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input for the current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	m.status = ""

	switch m.machine.Mode() {
	case session.ModeCreate:
		return m.handleCreateKey(msg)
	case session.ModeLoading:
		if key.Matches(msg, m.keys.Cancel) {
			return m, tea.Quit
		}
		return m, nil
	case session.ModeStudy:
		return m.handleStudyKey(msg)
	}
	return m, nil
}

func (m Model) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchSource):
		next := m.machine.Source().Toggle()
		if err := m.machine.SetSourceMode(next); err != nil {
			m.logger.Warn("switch source mode", "error", err)
			return m, nil
		}
		m.input.Placeholder = next.Placeholder()
		return m, nil

	case key.Matches(msg, m.keys.Generate):
		return m.startGeneration()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if err := m.machine.SetText(m.input.Value()); err != nil {
		m.logger.Warn("set input text", "error", err)
	}
	return m, cmd
}

func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	if err := m.machine.SetText(m.input.Value()); err != nil {
		m.logger.Warn("set input text", "error", err)
		return m, nil
	}
	req, err := m.machine.Generate()
	if err != nil {
		if !errors.Is(err, session.ErrEmptyInput) {
			m.logger.Warn("start generation", "error", err)
		}
		return m, nil
	}
	m.input.Blur()
	m.savePrefs()
	return m, tea.Batch(m.spinner.Tick, generateCmd(m.ctx, m.completer, req))
}

func (m Model) handleGenerated(msg generatedMsg) (tea.Model, tea.Cmd) {
	if m.store != nil {
		m.health = m.store.Snapshot()
	}
	err := m.machine.Resolve(msg.id, msg.raw, msg.err)
	switch {
	case errors.Is(err, session.ErrStaleResult):
		return m, nil
	case err != nil:
		// Back in create mode with the text intact.
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) handleStudyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		if err := m.machine.Reset(); err != nil {
			m.logger.Warn("reset deck", "error", err)
			return m, nil
		}
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Copy):
		nav := m.machine.Navigator()
		if err := m.copy(nav.Card().String()); err != nil {
			m.logger.Warn("copy card to clipboard", "error", err)
			m.status = "Clipboard unavailable"
			return m, nil
		}
		m.status = "Copied card to clipboard"
		return m, nil
	}

	res := m.machine.HandleKey(studyKey(msg))
	if res.Scheduled {
		return m, m.scheduleStep(res.Step)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.machine.Mode() != session.ModeStudy {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.machine.Flip()
	}
	return m, nil
}

func (m Model) handleStep(msg stepMsg) (tea.Model, tea.Cmd) {
	next, ok := m.machine.Advance(msg.step)
	if !ok {
		return m, nil
	}
	return m, m.scheduleStep(next)
}

func (m Model) scheduleStep(step session.Step) tea.Cmd {
	return m.schedule(step.Delay, stepMsg{step: step})
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, SourceMode: m.machine.Source().String()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs", "path", m.prefsPath, "error", err)
	}
}

func (m Model) inputWidth() int {
	w := m.width - 6
	if w > 96 {
		w = 96
	}
	if w < 20 {
		w = 20
	}
	return w
}

func studyKey(msg tea.KeyMsg) session.Key {
	switch msg.Type {
	case tea.KeyLeft:
		return session.KeyLeft
	case tea.KeyRight:
		return session.KeyRight
	case tea.KeyUp:
		return session.KeyUp
	case tea.KeyDown:
		return session.KeyDown
	default:
		return session.KeyUnknown
	}
}

// Messages

type generatedMsg struct {
	id  uuid.UUID
	raw string
	err error
}

type stepMsg struct {
	step session.Step
}

// Commands

func tickAfter(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

func generateCmd(ctx context.Context, c completion.Completer, req session.Request) tea.Cmd {
	return func() tea.Msg {
		if c == nil {
			return generatedMsg{id: req.ID, err: errors.New("no completion backend configured")}
		}
		raw, err := c.Complete(ctx, req.Prompt)
		return generatedMsg{id: req.ID, raw: raw, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
