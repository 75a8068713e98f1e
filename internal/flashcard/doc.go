// Package flashcard holds the card data model and the two pure functions that
// talk to a text-generation backend: BuildPrompt renders the request and
// Parse turns the raw reply into a Deck.
//
// # Wire format
//
// Backends must answer with a bare JSON array:
//
//	[
//	  {"front": "Paris", "back": "Capital of France"}
//	]
//
// Parse rejects anything else with ErrMalformed and an empty array with
// ErrEmpty. Card counts outside the requested range are accepted.
//
// # Source modes
//
// SourceDescribe asks for exactly ten original cards about a topic, and
// SourcePaste asks for three to ten cards extracted from the supplied text.
// Both prompts require a JSON-only answer.
package flashcard
