package laxjson

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/leofalp/laxjson/coerce"
	"github.com/leofalp/laxjson/internal/textutil"
)

// snippetLimit bounds how much of a failing input reaches the log.
const snippetLimit = 200

// Parse accepts any value and runs the full recovery pipeline over it.
//
// Input handling:
//   - nil parses to nil.
//   - A NaN float parses to math.NaN() when ConvertNaN is set.
//   - Any other numeric value (ints, uints, floats, json.Number) parses
//     to its float64 value when ConvertNumbers is set, bypassing the JSON
//     parser entirely.
//   - Strings and []byte go through quote normalization, token rewriting
//     (undefined, NaN, trailing commas), a JSON parse with a jsonrepair
//     retry, and finally the cleaning pass.
//   - Everything else fails with an error wrapping [ErrUnsupportedInput].
//
// Parse failures are recovered, not thrown: they are optionally logged
// (LogOnFail), handed to the OnError callback, and returned as an error
// wrapping [ErrParse] alongside a nil value. Only option validation fails
// fast, with an error wrapping [ErrInvalidOptions]. Parse never panics.
//
// Example usage:
//
//	value, err := laxjson.Parse("{'name': 'Ada', 'age': '36',}", &laxjson.Options{
//		ConvertNumbers: true,
//	})
//	// value == map[string]any{"name": "Ada", "age": float64(36)}
func Parse(value any, opts *Options) (any, error) {
	resolved := withDefaults(opts)
	if err := resolved.validate(); err != nil {
		return nil, err
	}

	switch input := value.(type) {
	case nil:
		return nil, nil
	case string:
		return parseText(input, &resolved)
	case []byte:
		return parseText(string(input), &resolved)
	default:
		if number, ok := coerce.Float64(value); ok {
			if math.IsNaN(number) {
				if resolved.ConvertNaN {
					return math.NaN(), nil
				}
				return nil, fmt.Errorf("%w: NaN input requires ConvertNaN", ErrUnsupportedInput)
			}
			if resolved.ConvertNumbers {
				return number, nil
			}
			return nil, fmt.Errorf("%w: numeric input requires ConvertNumbers", ErrUnsupportedInput)
		}
		return nil, fmt.Errorf("%w: cannot parse %T", ErrUnsupportedInput, value)
	}
}

// ParseString is the string-only entry point. It behaves exactly like
// [Parse] with a string argument.
func ParseString(s string, opts *Options) (any, error) {
	resolved := withDefaults(opts)
	if err := resolved.validate(); err != nil {
		return nil, err
	}
	return parseText(s, &resolved)
}

// ParseAs parses and cleans value like [Parse], then decodes the cleaned
// tree into T via a JSON round-trip.
//
// Example usage:
//
//	type Person struct {
//		Name string `json:"name"`
//		Age  int    `json:"age"`
//	}
//
//	person, err := laxjson.ParseAs[Person]("{name: 'Ada', age: 36}", nil)
func ParseAs[T any](value any, opts *Options) (T, error) {
	var result T

	cleaned, err := Parse(value, opts)
	if err != nil {
		return result, err
	}

	encoded, err := json.Marshal(cleaned)
	if err != nil {
		return result, fmt.Errorf("%w: cannot re-encode cleaned data: %v", ErrParse, err)
	}
	if err := json.Unmarshal(encoded, &result); err != nil {
		return result, fmt.Errorf("%w: cannot decode cleaned data as %T: %v", ErrParse, result, err)
	}
	return result, nil
}

// parseText runs repair, parse, and clean over text. opts is already
// validated.
func parseText(s string, opts *Options) (any, error) {
	repaired, err := repairText(s, opts)
	if err != nil {
		opts.reportFailure(err, textutil.Truncate(s, snippetLimit))
		return nil, err
	}

	var tree any
	if err := json.Unmarshal([]byte(repaired), &tree); err != nil {
		wrapped := fmt.Errorf("%w: %v", ErrParse, err)
		opts.reportFailure(wrapped, textutil.Truncate(s, snippetLimit))
		return nil, wrapped
	}

	cleaner, err := NewCleaner(opts)
	if err != nil {
		return nil, err
	}

	cleaned, kept := cleaner.Clean(tree)
	if !kept {
		return nil, nil
	}
	return cleaned, nil
}
