// Package jsonx extracts JSON objects from loosely formatted text.
//
// Tool arguments arrive from models and from the command line wrapped in
// markdown fences or surrounding prose. This package pulls out the
// object portion so it can be dispatched as-is.
package jsonx

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Extract returns the JSON object portion of text. It accepts pure
// JSON, JSON inside markdown code fences, and a JSON object embedded in
// prose (first '{' to last '}').
//
// Limitations:
// - Only handles JSON objects, not arrays
// - Uses simple brace matching, not full JSON parsing
func Extract(text string) (json.RawMessage, error) {
	text = stripCodeFences(text)

	var probe interface{}
	if err := json.Unmarshal([]byte(text), &probe); err == nil {
		return json.RawMessage(text), nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		candidate := text[start : end+1]
		if err := json.Unmarshal([]byte(candidate), &probe); err == nil {
			return json.RawMessage(candidate), nil
		}
	}

	preview := text
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}
	return nil, fmt.Errorf("no JSON object found in %q", preview)
}

// Decode extracts a JSON object from text and unmarshals it.
func Decode[T any](text string) (T, error) {
	var result T
	raw, err := Extract(text)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return result, nil
}

// stripCodeFences removes ```json / ``` markers around text.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "```json") {
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "```json"))
	} else if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
	}
	if strings.HasSuffix(trimmed, "```") {
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "```"))
	}
	return trimmed
}
