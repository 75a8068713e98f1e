package deck

import (
	"errors"
	"fmt"
	"time"

	"github.com/five82/flashcards/internal/flashcard"
)

// Default transition timings.
const (
	DefaultExitDelay  = 150 * time.Millisecond
	DefaultEnterDelay = 50 * time.Millisecond
)

// ErrEmptyDeck is returned when a navigator is created over zero cards.
var ErrEmptyDeck = errors.New("deck has no cards")

// Phase is the card transition sub-state.
type Phase int

const (
	// PhaseIdle means no transition is in flight.
	PhaseIdle Phase = iota
	// PhaseExiting means the current card is animating out; the index has
	// not moved yet.
	PhaseExiting
	// PhaseEntering means the index has moved and the new card is animating in.
	PhaseEntering
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseExiting:
		return "exiting"
	case PhaseEntering:
		return "entering"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Timing configures the two transition delays.
type Timing struct {
	Exit  time.Duration
	Enter time.Duration
}

// DefaultTiming returns the standard 150ms/50ms transition.
func DefaultTiming() Timing {
	return Timing{Exit: DefaultExitDelay, Enter: DefaultEnterDelay}
}

func (t Timing) normalized() Timing {
	if t.Exit <= 0 {
		t.Exit = DefaultExitDelay
	}
	if t.Enter <= 0 {
		t.Enter = DefaultEnterDelay
	}
	return t
}

// Step is a timed continuation of a transition. The owner waits Delay and
// then hands the step back to Advance.
type Step struct {
	Seq   uint64
	Phase Phase
	Delay time.Duration
}

// Navigator walks a fixed deck one card at a time.
type Navigator struct {
	cards   flashcard.Deck
	timing  Timing
	index   int
	flipped bool
	locked  bool
	phase   Phase
	dir     int
	seq     uint64
}

// New creates a navigator positioned on the first card, face up.
func New(cards flashcard.Deck, timing Timing) (*Navigator, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}
	return &Navigator{
		cards:  cards.Clone(),
		timing: timing.normalized(),
	}, nil
}

// Index returns the zero-based position of the current card.
func (n *Navigator) Index() int { return n.index }

// Len returns the number of cards in the deck.
func (n *Navigator) Len() int { return len(n.cards) }

// Card returns the current card.
func (n *Navigator) Card() flashcard.Card { return n.cards[n.index] }

// Flipped reports whether the back of the card is showing.
func (n *Navigator) Flipped() bool { return n.flipped }

// Locked reports whether a transition is in flight.
func (n *Navigator) Locked() bool { return n.locked }

// Phase returns the current transition phase.
func (n *Navigator) Phase() Phase { return n.phase }

// AtStart reports whether the first card is showing.
func (n *Navigator) AtStart() bool { return n.index == 0 }

// AtEnd reports whether the last card is showing.
func (n *Navigator) AtEnd() bool { return n.index == len(n.cards)-1 }

// Cards returns a copy of the deck.
func (n *Navigator) Cards() flashcard.Deck { return n.cards.Clone() }

// Flip toggles the visible face. It is allowed mid-transition.
func (n *Navigator) Flip() {
	n.flipped = !n.flipped
}

// Next starts a transition to the following card. It returns false when
// already on the last card or while another transition is in flight.
func (n *Navigator) Next() (Step, bool) {
	if n.AtEnd() {
		return Step{}, false
	}
	return n.begin(1)
}

// Previous starts a transition to the preceding card. It returns false when
// already on the first card or while another transition is in flight.
func (n *Navigator) Previous() (Step, bool) {
	if n.AtStart() {
		return Step{}, false
	}
	return n.begin(-1)
}

func (n *Navigator) begin(dir int) (Step, bool) {
	if n.locked {
		return Step{}, false
	}
	n.locked = true
	n.phase = PhaseExiting
	n.dir = dir
	n.seq++
	return Step{Seq: n.seq, Phase: PhaseExiting, Delay: n.timing.Exit}, true
}

// Advance applies a due step. Stale steps, from a cancelled or already
// completed transition, are ignored and return false. When the returned bool
// is true the caller must schedule the returned step.
func (n *Navigator) Advance(step Step) (Step, bool) {
	if step.Seq != n.seq || step.Phase != n.phase {
		return Step{}, false
	}
	switch n.phase {
	case PhaseExiting:
		n.flipped = false
		n.index += n.dir
		n.phase = PhaseEntering
		return Step{Seq: n.seq, Phase: PhaseEntering, Delay: n.timing.Enter}, true
	case PhaseEntering:
		n.phase = PhaseIdle
		n.locked = false
		n.dir = 0
		return Step{}, false
	default:
		return Step{}, false
	}
}

// Cancel abandons any in-flight transition. Steps issued before the call
// become stale.
func (n *Navigator) Cancel() {
	n.seq++
	n.phase = PhaseIdle
	n.locked = false
	n.dir = 0
}
