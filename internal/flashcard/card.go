package flashcard

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Card is a single term/definition pair.
type Card struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Deck is the ordered set of cards produced by one successful generation.
type Deck []Card

// Clone returns an independent copy of the deck.
func (d Deck) Clone() Deck {
	if len(d) == 0 {
		return nil
	}
	dup := make(Deck, len(d))
	copy(dup, d)
	return dup
}

// Encode writes the deck in the wire format the parser accepts.
func Encode(d Deck) ([]byte, error) {
	cards := d
	if cards == nil {
		cards = Deck{}
	}
	out, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode deck: %w", err)
	}
	return out, nil
}

// String renders a card as plain text, used for clipboard copies.
func (c Card) String() string {
	return strings.TrimSpace(c.Front) + "\n\n" + strings.TrimSpace(c.Back)
}
