package extract

import "strings"

// ExtractJSON pulls the first top-level JSON object out of a model
// response that may be wrapped in markdown fences or prose. Braces
// inside string values do not affect the balance.
func ExtractJSON(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return s
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
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
					return s[start : i+1]
				}
			}
		}
	}
	return s[start:]
}
