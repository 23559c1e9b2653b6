package laxjson

import "strings"

// validEscapes is the set of characters that may legally follow a
// backslash inside a double-quoted JSON string.
const validEscapes = `"\/bfnrtu`

// NormalizeQuotes converts single-quoted string literals in near-JSON text
// into double-quoted ones. Content that moves from single to double quotes
// is re-escaped: inner double quotes gain a backslash, escaped single
// quotes lose theirs. Sections that are already double-quoted pass through
// with their escapes normalized, and a backslash followed by a character
// outside the JSON escape set is doubled so it reads literally.
//
// The scanner tracks three state flags (inside single quotes, inside
// double quotes, pending escape) over a single pass. It never fails;
// arbitrary input produces some output string.
func NormalizeQuotes(s string) string {
	var out strings.Builder
	out.Grow(len(s) + 8)

	var inSingleQuote, inDoubleQuote, escapeNext bool

	for _, r := range s {
		if escapeNext {
			escapeNext = false
			switch {
			case r == '\'':
				// \' only needed escaping because of the single-quote
				// delimiter; in double-quoted output it is a plain quote.
				out.WriteRune('\'')
			case strings.ContainsRune(validEscapes, r):
				out.WriteByte('\\')
				out.WriteRune(r)
			default:
				// Unknown escape: double the backslash so the character
				// survives as literal text.
				out.WriteString(`\\`)
				out.WriteRune(r)
			}
			continue
		}

		switch {
		case r == '\\' && (inSingleQuote || inDoubleQuote):
			escapeNext = true
		case r == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			out.WriteByte('"')
		case r == '"' && inSingleQuote:
			// A bare double quote inside single-quoted content must be
			// escaped once the delimiters become double quotes.
			out.WriteString(`\"`)
		case r == '"':
			inDoubleQuote = !inDoubleQuote
			out.WriteByte('"')
		default:
			out.WriteRune(r)
		}
	}

	if escapeNext {
		// Trailing lone backslash; keep it representable.
		out.WriteString(`\\`)
	}
	return out.String()
}
