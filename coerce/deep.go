package coerce

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StringOptions configures [ToStringDeep].
type StringOptions struct {
	// TimeLayout is the layout used to render time.Time values. Empty
	// means time.RFC3339.
	TimeLayout string
	// IncludeNull renders nil nodes as the string "null" instead of
	// leaving them nil.
	IncludeNull bool
}

// NumberOptions configures [ToNumberDeep].
type NumberOptions struct {
	// AsDecimal yields decimal.Decimal instead of float64, preserving the
	// exact textual value for precision-critical data.
	AsDecimal bool
}

// ToStringDeep walks a parsed tree and renders every scalar leaf as a
// string: numbers, booleans, json.Number, decimal.Decimal, and time.Time
// all become their textual form. Containers are rebuilt; keys and string
// leaves pass through untouched. A nil opts means all defaults.
func ToStringDeep(value any, opts *StringOptions) any {
	resolved := StringOptions{}
	if opts != nil {
		resolved = *opts
	}
	if resolved.TimeLayout == "" {
		resolved.TimeLayout = time.RFC3339
	}
	return stringDeep(value, &resolved)
}

func stringDeep(value any, opts *StringOptions) any {
	switch node := value.(type) {
	case nil:
		if opts.IncludeNull {
			return "null"
		}
		return nil
	case map[string]any:
		out := make(map[string]any, len(node))
		for key, item := range node {
			out[key] = stringDeep(item, opts)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, item := range node {
			out[i] = stringDeep(item, opts)
		}
		return out
	case string:
		return node
	case bool:
		return strconv.FormatBool(node)
	case json.Number:
		return node.String()
	case decimal.Decimal:
		return node.String()
	case time.Time:
		return node.Format(opts.TimeLayout)
	case float32:
		return strconv.FormatFloat(float64(node), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(node, 'f', -1, 64)
	default:
		if integer, ok := Int64(node); ok {
			return strconv.FormatInt(integer, 10)
		}
		return node
	}
}

// ToNumberDeep walks a parsed tree and converts every numeric-looking
// string leaf to a number, float64 by default or decimal.Decimal under
// NumberOptions.AsDecimal. Non-numeric strings and every other node kind
// pass through untouched. A nil opts means all defaults.
func ToNumberDeep(value any, opts *NumberOptions) any {
	resolved := NumberOptions{}
	if opts != nil {
		resolved = *opts
	}
	return numberDeep(value, &resolved)
}

func numberDeep(value any, opts *NumberOptions) any {
	switch node := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for key, item := range node {
			out[key] = numberDeep(item, opts)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, item := range node {
			out[i] = numberDeep(item, opts)
		}
		return out
	case string:
		if opts.AsDecimal {
			if parsed, err := decimal.NewFromString(node); err == nil {
				return parsed
			}
			return node
		}
		// Plain decimal notation only; hex floats and digit separators
		// are not numeric strings.
		if strings.ContainsAny(node, "xXpP_") {
			return node
		}
		if parsed, err := strconv.ParseFloat(node, 64); err == nil && !math.IsNaN(parsed) && !math.IsInf(parsed, 0) {
			return parsed
		}
		return node
	default:
		return value
	}
}
