// Package cli provides the cobra root command and flag parsing for the
// flashcards binary.
package cli
