package quizgen

import "fmt"

// extractJSON returns the first complete top-level JSON object in s.
// Model output often wraps JSON in prose or code fences; this scans from
// the first "{" and tracks brace depth, honoring strings and escapes.
func extractJSON(s string) (string, error) {
	start := -1
	for i, r := range s {
		if r == '{' {
			start = i
			break
		}
	}
	if start == -1 {
		return "", fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("unterminated JSON object in response")
}
