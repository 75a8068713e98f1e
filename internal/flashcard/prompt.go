package flashcard

import (
	"errors"
	"fmt"
	"strings"
)

// SourceMode selects where card content comes from.
type SourceMode int

const (
	// SourceDescribe asks the backend to author cards about a topic.
	SourceDescribe SourceMode = iota
	// SourcePaste asks the backend to extract cards from supplied text.
	SourcePaste
)

// ErrUnknownSourceMode is returned for values outside the SourceMode enum.
var ErrUnknownSourceMode = errors.New("unknown source mode")

// SourceModes lists every mode in display order.
func SourceModes() []SourceMode {
	return []SourceMode{SourcePaste, SourceDescribe}
}

// String returns the stable identifier used in config and prefs files.
func (m SourceMode) String() string {
	switch m {
	case SourceDescribe:
		return "describe"
	case SourcePaste:
		return "paste"
	default:
		return fmt.Sprintf("SourceMode(%d)", int(m))
	}
}

// Label returns the tab label shown in the create view.
func (m SourceMode) Label() string {
	switch m {
	case SourceDescribe:
		return "Describe topic"
	case SourcePaste:
		return "Paste text"
	default:
		return ""
	}
}

// Placeholder returns the hint shown in an empty input for this mode.
func (m SourceMode) Placeholder() string {
	switch m {
	case SourceDescribe:
		return "Describe a topic will generate the details...\n\ne.g. capitals of the world\ne.g. fun facts about San Diego"
	case SourcePaste:
		return "Paste your text here..."
	default:
		return ""
	}
}

// Valid reports whether m is a member of the enum.
func (m SourceMode) Valid() bool {
	return m == SourceDescribe || m == SourcePaste
}

// Toggle returns the other source mode.
func (m SourceMode) Toggle() SourceMode {
	if m == SourcePaste {
		return SourceDescribe
	}
	return SourcePaste
}

// ParseSourceMode maps "describe" or "paste" (case-insensitive) to a SourceMode.
func ParseSourceMode(s string) (SourceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "describe", "topic":
		return SourceDescribe, nil
	case "paste", "text":
		return SourcePaste, nil
	default:
		return SourceDescribe, fmt.Errorf("%w: %q", ErrUnknownSourceMode, s)
	}
}

// BuildPrompt renders the completion prompt for the given mode and user text.
// The text is embedded verbatim.
func BuildPrompt(mode SourceMode, text string) (string, error) {
	switch mode {
	case SourcePaste:
		return fmt.Sprintf(pastePrompt, text), nil
	case SourceDescribe:
		return fmt.Sprintf(describePrompt, text), nil
	default:
		return "", fmt.Errorf("build prompt: %w: %d", ErrUnknownSourceMode, int(mode))
	}
}

const pastePrompt = `You are tasked with extracting flashcard content from a given text chunk. Your goal is to identify key terms and their corresponding definitions or explanations that would be suitable for creating flashcards.

Here's the text chunk you need to analyze:
<text_chunk>
%s
</text_chunk>

Guidelines for extracting flashcard content:
1. Identify important terms, concepts, or phrases that are central to the text's topic.
2. For each term, find a corresponding definition, explanation, or key information from the text.
3. Ensure that the term and definition pairs are concise and clear.
4. Extract only the most relevant and significant information.
5. Aim for a balance between comprehensiveness and brevity.

Create between 3-10 flashcards based on the content available.

Respond ONLY with a valid JSON array in this exact format:
[
  {
    "front": "Term or concept (keep concise, 1-5 words ideal)",
    "back": "Definition or explanation from the text (clear and educational, under 50 words)"
  }
]

DO NOT include any text outside the JSON array.`

const describePrompt = `You are tasked with creating educational flashcards about "%s". Your goal is to create concise, clear, and accurate flashcard pairs that would help someone learn this topic.

Guidelines for creating effective flashcards:
1. Each flashcard should have a clear term/concept on one side and a concise definition/explanation on the other
2. Terms should be specific and focused (ideally 1-5 words)
3. Definitions should be clear and brief (ideally under 50 words)
4. Focus on the most important concepts related to the topic
5. Make the content educational, accurate, and helpful for learning

Based on the topic, adapt your approach:
* For locations (countries, cities): Use the location as the term and key facts as the definition
* For historical subjects: Use events/people as terms and dates/significance as definitions
* For scientific topics: Use concepts/terms as the front and explanations as the back
* For language learning: Use words in one language as terms and translations as definitions

Please provide exactly 10 flashcards in this JSON format - don't include any text outside the JSON:
[
  {
    "front": "Term or concept",
    "back": "Definition or explanation"
  }
]

Respond with the JSON array only, no other text.`
