// Package session implements the flashcard view state machine.
//
// A Machine moves between create, loading and study modes. Generate hands
// the caller a Request to execute asynchronously and Resolve applies its
// outcome; results for anything other than the pending request are dropped.
// In study mode the machine owns a deck.Navigator and routes navigation keys
// to it, returning timed steps the caller delivers back through Advance.
package session
