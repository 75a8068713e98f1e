package flashcard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidArray(t *testing.T) {
	raw := `
	[
	  {"front": "  Paris ", "back": "Capital of France"},
	  {"front": "Tokyo", "back": "Capital of Japan", "extra": 1}
	]
	`
	deck, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, deck, 2)
	assert.Equal(t, Card{Front: "Paris", Back: "Capital of France"}, deck[0])
	assert.Equal(t, Card{Front: "Tokyo", Back: "Capital of Japan"}, deck[1])
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"not json", "not json", ErrMalformed},
		{"object", "{}", ErrMalformed},
		{"null", "null", ErrMalformed},
		{"blank", "   ", ErrMalformed},
		{"missing back", `[{"front":"x"}]`, ErrMalformed},
		{"missing front", `[{"back":"x"}]`, ErrMalformed},
		{"numeric front", `[{"front":1,"back":"x"}]`, ErrMalformed},
		{"null element", `[null]`, ErrMalformed},
		{"string element", `["x"]`, ErrMalformed},
		{"blank back", `[{"front":"x","back":"  "}]`, ErrMalformed},
		{"prose around array", "Here you go:\n[{\"front\":\"x\",\"back\":\"y\"}]", ErrMalformed},
		{"truncated", `[{"front":"x","back":"y"}`, ErrMalformed},
		{"empty array", "[]", ErrEmpty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deck, err := Parse(tc.raw)
			require.Error(t, err)
			assert.Nil(t, deck, "no partial deck on failure")
			assert.True(t, errors.Is(err, tc.want), "err = %v, want %v", err, tc.want)
		})
	}
}

func TestParse_BadElementInLongArrayRejectsWholeDeck(t *testing.T) {
	raw := `[{"front":"a","back":"b"},{"front":"c","back":"d"},{"front":"e"}]`
	deck, err := Parse(raw)
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "card 2")
	assert.Nil(t, deck)
}

func TestParse_DoesNotEnforceCount(t *testing.T) {
	deck, err := Parse(`[{"front":"only","back":"one"}]`)
	require.NoError(t, err)
	assert.Len(t, deck, 1)
}

func TestEncodeParseRoundTrip(t *testing.T) {
	decks := []Deck{
		{{Front: "a", Back: "b"}},
		{
			{Front: "Mitochondria", Back: "Powerhouse of the cell"},
			{Front: `Quote "marks"`, Back: "Back\nwith newline & <html>"},
			{Front: "Ünïcødé", Back: "日本語"},
		},
	}
	for _, d := range decks {
		raw, err := Encode(d)
		require.NoError(t, err)

		got, err := Parse(string(raw))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}

func TestEncode_NilDeckIsEmptyArray(t *testing.T) {
	raw, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	_, err = Parse(string(raw))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestDeckClone(t *testing.T) {
	d := Deck{{Front: "a", Back: "b"}}
	dup := d.Clone()
	dup[0].Front = "z"
	assert.Equal(t, "a", d[0].Front)
	assert.Nil(t, Deck(nil).Clone())
}
