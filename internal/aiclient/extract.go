package aiclient

import "strings"

// StripCodeFences removes markdown ```json / ``` fences that generation
// services often wrap around their JSON payloads.
func StripCodeFences(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")
	return strings.TrimSpace(response)
}

// ExtractJSONObject returns the first top-level {...} block found in
// the text, using a brace-matched scan that honors string literals and
// escaped quotes. Returns "" when no complete object is present.
func ExtractJSONObject(text string) string {
	text = StripCodeFences(text)

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]

		if escaped {
			escaped = false
			continue
		}

		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}

	return ""
}
