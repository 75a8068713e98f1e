package flashcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_Paste(t *testing.T) {
	text := "Photosynthesis converts light into chemical energy.\n100% of {braces} kept"
	prompt, err := BuildPrompt(SourcePaste, text)
	require.NoError(t, err)

	assert.Contains(t, prompt, "<text_chunk>\n"+text+"\n</text_chunk>")
	assert.Contains(t, prompt, "between 3-10 flashcards")
	assert.Contains(t, prompt, `"front"`)
	assert.Contains(t, prompt, `"back"`)
	assert.Contains(t, prompt, "DO NOT include any text outside the JSON array.")
}

func TestBuildPrompt_Describe(t *testing.T) {
	prompt, err := BuildPrompt(SourceDescribe, "capitals of the world")
	require.NoError(t, err)

	assert.Contains(t, prompt, `about "capitals of the world"`)
	assert.Contains(t, prompt, "exactly 10 flashcards")
	for _, domain := range []string{"For locations", "For historical subjects", "For scientific topics", "For language learning"} {
		assert.Contains(t, prompt, domain)
	}
	assert.Contains(t, prompt, "don't include any text outside the JSON")
	assert.NotContains(t, prompt, "<text_chunk>")
}

func TestBuildPrompt_IsPure(t *testing.T) {
	a, err := BuildPrompt(SourcePaste, "same")
	require.NoError(t, err)
	b, err := BuildPrompt(SourcePaste, "same")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildPrompt_UnknownMode(t *testing.T) {
	_, err := BuildPrompt(SourceMode(42), "x")
	assert.ErrorIs(t, err, ErrUnknownSourceMode)
}

func TestParseSourceMode(t *testing.T) {
	cases := []struct {
		in      string
		want    SourceMode
		wantErr bool
	}{
		{"describe", SourceDescribe, false},
		{" PASTE ", SourcePaste, false},
		{"topic", SourceDescribe, false},
		{"text", SourcePaste, false},
		{"", SourceDescribe, true},
		{"upload", SourceDescribe, true},
	}
	for _, tc := range cases {
		got, err := ParseSourceMode(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrUnknownSourceMode, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, got, mustParse(t, got.String()), "String round-trips")
	}
}

func TestSourceModeHelpers(t *testing.T) {
	assert.Equal(t, SourcePaste, SourceDescribe.Toggle())
	assert.Equal(t, SourceDescribe, SourcePaste.Toggle())
	assert.False(t, SourceMode(9).Valid())
	assert.True(t, strings.HasPrefix(SourceMode(9).String(), "SourceMode("))
	for _, m := range SourceModes() {
		assert.True(t, m.Valid())
		assert.NotEmpty(t, m.Label())
		assert.NotEmpty(t, m.Placeholder())
	}
}

func mustParse(t *testing.T, s string) SourceMode {
	t.Helper()
	m, err := ParseSourceMode(s)
	require.NoError(t, err)
	return m
}
