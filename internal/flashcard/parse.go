package flashcard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformed means the response was not a JSON array of {front, back} objects.
	ErrMalformed = errors.New("malformed flashcard response")
	// ErrEmpty means the response was a well-formed but empty array.
	ErrEmpty = errors.New("flashcard response contained no cards")
)

type wireCard struct {
	Front *string `json:"front"`
	Back  *string `json:"back"`
}

// Parse decodes a raw completion into a Deck. The whole body must be a JSON
// array; nothing is returned unless every element is valid.
func Parse(raw string) (Deck, error) {
	body := bytes.TrimSpace([]byte(raw))
	if len(body) == 0 || body[0] != '[' {
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrMalformed)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(body, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(elems) == 0 {
		return nil, ErrEmpty
	}

	deck := make(Deck, 0, len(elems))
	for i, elem := range elems {
		card, err := parseCard(elem)
		if err != nil {
			return nil, fmt.Errorf("%w: card %d: %v", ErrMalformed, i, err)
		}
		deck = append(deck, card)
	}
	return deck, nil
}

func parseCard(elem json.RawMessage) (Card, error) {
	trimmed := bytes.TrimSpace(elem)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Card{}, errors.New("not an object")
	}
	var wc wireCard
	if err := json.Unmarshal(trimmed, &wc); err != nil {
		return Card{}, err
	}
	if wc.Front == nil {
		return Card{}, errors.New("missing front")
	}
	if wc.Back == nil {
		return Card{}, errors.New("missing back")
	}
	front := strings.TrimSpace(*wc.Front)
	back := strings.TrimSpace(*wc.Back)
	if front == "" {
		return Card{}, errors.New("blank front")
	}
	if back == "" {
		return Card{}, errors.New("blank back")
	}
	return Card{Front: front, Back: back}, nil
}
