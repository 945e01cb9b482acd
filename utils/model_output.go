package utils

import (
	"encoding/json"
	"strings"
)

// StripPromptEcho drops a verbatim leading echo of the prompt from model
// output; causal models frequently repeat the prompt before the answer.
func StripPromptEcho(prompt, generated string) string {
	if prompt != "" && strings.HasPrefix(generated, prompt) {
		return strings.TrimSpace(generated[len(prompt):])
	}
	return strings.TrimSpace(generated)
}

// ExtractJSONObject locates the JSON object embedded in model output with
// a greedy first-brace-to-last-brace scan and verifies that it parses.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return "", false
	}
	candidate := text[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", false
	}
	return candidate, true
}
