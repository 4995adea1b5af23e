package utils

import (
	"encoding/json"
	"strings"
)

// Payload is a decoded JSON object taken from free-form provider text.
type Payload map[string]any

// ExtractJSONObject returns the object enclosed by the first '{' and the last '}' of raw.
// It does not balance braces, so a stray '}' inside a string value before the real end can
// mis-extract; that surfaces as ok == false or as a payload the validator rejects.
func ExtractJSONObject(raw string) (Payload, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, false
	}

	var payload Payload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, false
	}
	if payload == nil {
		return nil, false
	}
	return payload, true
}
