package coerce

import "strings"

// falsyWords are the string contents treated as false by the content
// rule, compared case-insensitively after trimming.
var falsyWords = map[string]struct{}{
	"false":     {},
	"0":         {},
	"no":        {},
	"n":         {},
	"off":       {},
	"nan":       {},
	"null":      {},
	"undefined": {},
}

// ToBooleanContent interprets a string by content truthiness: empty and
// all-whitespace strings are false, the falsy words (false, 0, no, n,
// off, nan, null, undefined; any case) are false, everything else is
// true.
func ToBooleanContent(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	_, falsy := falsyWords[strings.ToLower(trimmed)]
	return !falsy
}

// ToBooleanExplicit converts only unambiguous boolean representations:
// bool itself, numeric values exactly 0 or 1, and the strings "true",
// "false", "1", "0" (trimmed, any case). The second result reports
// whether the value qualified.
func ToBooleanExplicit(value any) (bool, bool) {
	switch node := value.(type) {
	case bool:
		return node, true
	case string:
		switch strings.ToLower(strings.TrimSpace(node)) {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
		return false, false
	default:
		if number, ok := Float64(value); ok {
			switch number {
			case 0:
				return false, true
			case 1:
				return true, true
			}
		}
		return false, false
	}
}

// ToBooleanContentDeep walks a parsed tree and replaces every string leaf
// with its [ToBooleanContent] interpretation. Other node kinds pass
// through untouched.
func ToBooleanContentDeep(value any) any {
	switch node := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for key, item := range node {
			out[key] = ToBooleanContentDeep(item)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, item := range node {
			out[i] = ToBooleanContentDeep(item)
		}
		return out
	case string:
		return ToBooleanContent(node)
	default:
		return value
	}
}
