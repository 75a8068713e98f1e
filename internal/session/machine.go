package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/five82/flashcards/internal/deck"
	"github.com/five82/flashcards/internal/flashcard"
)

var (
	// ErrEmptyInput is returned by Generate when the text is blank.
	ErrEmptyInput = errors.New("input is empty")
	// ErrBackendFailure wraps any error reported by the completion call.
	ErrBackendFailure = errors.New("completion backend failed")
	// ErrStaleResult is returned when a resolution does not match the
	// pending request.
	ErrStaleResult = errors.New("stale completion result")
	// ErrNotAllowed is returned when an operation is invalid in the current mode.
	ErrNotAllowed = errors.New("operation not allowed in current mode")
)

// FailureMessage is the only text shown to the user when generation fails.
const FailureMessage = "Failed to generate flashcards. Please try again."

// Mode is the top-level view state.
type Mode int

const (
	ModeCreate Mode = iota
	ModeLoading
	ModeStudy
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeLoading:
		return "loading"
	case ModeStudy:
		return "study"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Key is a navigation key delivered to the study view.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Notice is a user-visible failure notification.
type Notice struct {
	Message string
	Err     error
}

// Request is a generation the caller must execute exactly once and report
// back through Resolve.
type Request struct {
	ID     uuid.UUID
	Source flashcard.SourceMode
	Prompt string
}

// Step is a navigator step tagged with the deck it belongs to, so steps from
// a discarded deck are never applied to a new one.
type Step struct {
	Deck uint64
	deck.Step
}

// KeyResult reports how a key was handled. When Scheduled is true the
// caller must deliver Step back through Advance after Step.Delay.
type KeyResult struct {
	Handled         bool
	SuppressDefault bool
	Scheduled       bool
	Step            Step
}

// Options configures a Machine.
type Options struct {
	Timing    deck.Timing
	Source    flashcard.SourceMode
	OnFailure func(Notice)
	Logger    *slog.Logger
	// NewID overrides request id generation.
	NewID func() uuid.UUID
}

// Machine owns the mode lifecycle: text entry, one pending generation and
// the study deck.
type Machine struct {
	mode    Mode
	source  flashcard.SourceMode
	text    string
	pending uuid.UUID

	nav     *deck.Navigator
	deckGen uint64
	timing  deck.Timing

	notice    *Notice
	onFailure func(Notice)
	logger    *slog.Logger
	newID     func() uuid.UUID
}

// New returns a machine in create mode.
func New(opts Options) *Machine {
	m := &Machine{
		mode:      ModeCreate,
		source:    opts.Source,
		timing:    opts.Timing,
		onFailure: opts.OnFailure,
		logger:    opts.Logger,
		newID:     opts.NewID,
	}
	if !m.source.Valid() {
		m.source = flashcard.SourceDescribe
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.newID == nil {
		m.newID = uuid.New
	}
	return m
}

func (m *Machine) Mode() Mode                   { return m.mode }
func (m *Machine) Source() flashcard.SourceMode { return m.source }
func (m *Machine) Text() string                 { return m.text }

// Pending returns the id of the in-flight request, if any.
func (m *Machine) Pending() (uuid.UUID, bool) {
	return m.pending, m.mode == ModeLoading
}

// Navigator returns the study navigator, or nil outside study mode.
func (m *Machine) Navigator() *deck.Navigator {
	if m.mode != ModeStudy {
		return nil
	}
	return m.nav
}

// LastNotice returns the most recent failure notice. It is cleared when a new
// generation starts or the deck is reset.
func (m *Machine) LastNotice() (Notice, bool) {
	if m.notice == nil {
		return Notice{}, false
	}
	return *m.notice, true
}

// SetSourceMode switches between describe and paste. The text is kept.
func (m *Machine) SetSourceMode(mode flashcard.SourceMode) error {
	if m.mode != ModeCreate {
		return ErrNotAllowed
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", flashcard.ErrUnknownSourceMode, int(mode))
	}
	m.source = mode
	return nil
}

// SetText replaces the input text.
func (m *Machine) SetText(text string) error {
	if m.mode != ModeCreate {
		return ErrNotAllowed
	}
	m.text = text
	return nil
}

// Generate builds the prompt for the current input and moves to loading.
func (m *Machine) Generate() (Request, error) {
	if m.mode != ModeCreate {
		return Request{}, ErrNotAllowed
	}
	if strings.TrimSpace(m.text) == "" {
		return Request{}, ErrEmptyInput
	}
	prompt, err := flashcard.BuildPrompt(m.source, m.text)
	if err != nil {
		return Request{}, err
	}
	req := Request{ID: m.newID(), Source: m.source, Prompt: prompt}
	m.pending = req.ID
	m.notice = nil
	m.mode = ModeLoading
	m.logger.Info("generation started", "request", req.ID.String(), "source", req.Source.String(), "input_chars", len(m.text))
	return req, nil
}

// Resolve delivers the outcome of request id. It returns ErrStaleResult when
// id is not pending, the failure when generation failed, and nil when the
// machine entered study mode.
func (m *Machine) Resolve(id uuid.UUID, raw string, callErr error) error {
	if m.mode != ModeLoading || id != m.pending {
		m.logger.Debug("ignoring stale completion", "request", id.String(), "mode", m.mode.String())
		return ErrStaleResult
	}
	m.pending = uuid.Nil

	if callErr != nil {
		return m.fail(id, fmt.Errorf("%w: %w", ErrBackendFailure, callErr))
	}
	cards, err := flashcard.Parse(raw)
	if err != nil {
		return m.fail(id, err)
	}
	nav, err := deck.New(cards, m.timing)
	if err != nil {
		return m.fail(id, err)
	}

	m.nav = nav
	m.deckGen++
	m.mode = ModeStudy
	m.logger.Info("generation succeeded", "request", id.String(), "cards", nav.Len())
	return nil
}

func (m *Machine) fail(id uuid.UUID, err error) error {
	m.mode = ModeCreate
	notice := Notice{Message: FailureMessage, Err: err}
	m.notice = &notice
	m.logger.Error("generation failed", "request", id.String(), "error", err)
	if m.onFailure != nil {
		m.onFailure(notice)
	}
	return err
}

// Reset abandons the study deck and returns to an empty create view.
func (m *Machine) Reset() error {
	if m.mode != ModeStudy {
		return ErrNotAllowed
	}
	m.nav.Cancel()
	m.nav = nil
	m.deckGen++
	m.text = ""
	m.notice = nil
	m.mode = ModeCreate
	return nil
}

// HandleKey routes a navigation key. Keys are only handled in study mode.
func (m *Machine) HandleKey(k Key) KeyResult {
	if m.mode != ModeStudy {
		return KeyResult{}
	}
	switch k {
	case KeyLeft:
		step, ok := m.Previous()
		return KeyResult{Handled: true, Scheduled: ok, Step: step}
	case KeyRight:
		step, ok := m.Next()
		return KeyResult{Handled: true, Scheduled: ok, Step: step}
	case KeyUp, KeyDown:
		m.Flip()
		return KeyResult{Handled: true, SuppressDefault: true}
	default:
		return KeyResult{}
	}
}

// Flip toggles the current card. It reports false outside study mode.
func (m *Machine) Flip() bool {
	if m.mode != ModeStudy {
		return false
	}
	m.nav.Flip()
	return true
}

// Next starts a move to the following card.
func (m *Machine) Next() (Step, bool) {
	if m.mode != ModeStudy {
		return Step{}, false
	}
	return m.tag(m.nav.Next())
}

// Previous starts a move to the preceding card.
func (m *Machine) Previous() (Step, bool) {
	if m.mode != ModeStudy {
		return Step{}, false
	}
	return m.tag(m.nav.Previous())
}

// Advance applies a due step. Steps for a discarded deck are ignored.
func (m *Machine) Advance(step Step) (Step, bool) {
	if m.mode != ModeStudy || step.Deck != m.deckGen {
		return Step{}, false
	}
	return m.tag(m.nav.Advance(step.Step))
}

func (m *Machine) tag(step deck.Step, ok bool) (Step, bool) {
	if !ok {
		return Step{}, false
	}
	return Step{Deck: m.deckGen, Step: step}, true
}
