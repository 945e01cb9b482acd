package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripPromptEcho(t *testing.T) {
	prompt := "Compare tax regimes for me."

	assert.Equal(t, "Here is the comparison.",
		StripPromptEcho(prompt, prompt+"\nHere is the comparison."))
	assert.Equal(t, "Here is the comparison.",
		StripPromptEcho(prompt, "Here is the comparison."))
	assert.Equal(t, "unrelated", StripPromptEcho("", " unrelated "))
}

func TestExtractJSONObject(t *testing.T) {
	text := `The comparison is: {"2023-24": {"total_tax_saved": 52500}} hope that helps`

	got, ok := ExtractJSONObject(text)
	assert.True(t, ok)
	assert.Equal(t, `{"2023-24": {"total_tax_saved": 52500}}`, got)
}

func TestExtractJSONObjectGreedy(t *testing.T) {
	// The scan spans from the first brace to the last one.
	text := `{"a": {"b": 1}} trailing {"c": 2}`

	_, ok := ExtractJSONObject(text)
	// The greedy span is not itself valid JSON here.
	assert.False(t, ok)

	got, ok := ExtractJSONObject(`{"a": {"b": 1}}`)
	assert.True(t, ok)
	assert.Equal(t, `{"a": {"b": 1}}`, got)
}

func TestExtractJSONObjectMissing(t *testing.T) {
	_, ok := ExtractJSONObject("no json here")
	assert.False(t, ok)

	_, ok = ExtractJSONObject("} backwards {")
	assert.False(t, ok)

	_, ok = ExtractJSONObject("{not valid json}")
	assert.False(t, ok)
}
