// Package textutil holds small string helpers shared by the parser's
// failure logging and the CLI output.
package textutil

import (
	"encoding/json"
	"fmt"
)

// DefaultTruncateLimit is the limit Truncate falls back to when given a
// non-positive one.
const DefaultTruncateLimit = 500

// Truncate shortens s to at most limit bytes, appending a suffix that
// records the original length so readers know data was omitted. A
// non-positive limit means [DefaultTruncateLimit].
func Truncate(s string, limit int) string {
	if limit <= 0 {
		limit = DefaultTruncateLimit
	}
	if len(s) <= limit {
		return s
	}
	return fmt.Sprintf("%s... (truncated, total: %d bytes)", s[:limit], len(s))
}

// CompactJSON renders value as compact JSON. On marshalling failure it
// returns a JSON-formatted error string rather than an error, so the
// result is always safe to embed in log output.
func CompactJSON(value any) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return `{"error": "failed to marshal to JSON: ` + err.Error() + `"}`
	}
	return string(encoded)
}
