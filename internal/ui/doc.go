// Package ui provides the Bubble Tea terminal interface for flashcards.
//
// The Model renders the create, loading and study views of a
// session.Machine, runs completions as commands and turns navigator steps
// into timed messages.
package ui
