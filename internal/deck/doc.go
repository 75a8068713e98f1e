// Package deck implements card-by-card navigation over a generated deck.
//
// A Navigator keeps the current index, whether the card is flipped, and a
// transition lock. Moving to another card is a two-phase timed transition:
//
//	idle --Next/Previous--> exiting --(Exit delay)--> entering --(Enter delay)--> idle
//
// The index moves and the card returns face up at the exiting→entering edge,
// so a renderer sees the locked "animating" state on both sides of the move.
// While locked, Next and Previous are refused. Flip is always allowed.
//
// The navigator does not own a clock. Next, Previous and Advance return a
// Step that the caller delivers back after Step.Delay, typically via
// tea.Tick. Cancel invalidates every outstanding Step, so a timer that fires
// after teardown cannot mutate a discarded navigator.
package deck
