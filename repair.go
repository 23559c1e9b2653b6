package laxjson

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/kaptinlin/jsonrepair"
)

// Token-rewriting patterns for the structural repair stage. They operate
// on text, not on a parse tree. The value-position guard ([:\[,] plus
// whitespace) keeps them away from most string content; text that is
// already valid JSON never reaches them, and candidates that stay
// invalid after rewriting go to the jsonrepair fallback.
var (
	// "key": undefined, including an optional trailing comma.
	undefinedPairPattern = regexp.MustCompile(`"[^"]*"\s*:\s*undefined\b\s*,?`)
	// A bare undefined token in value position.
	undefinedTokenPattern = regexp.MustCompile(`([:\[,]\s*)undefined\b`)
	// A bare NaN token in value position.
	nanTokenPattern = regexp.MustCompile(`([:\[,]\s*)NaN\b`)
	// A comma left dangling before a closing brace or bracket.
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
)

// rewriteTokens applies the option-driven token rewrites to already
// quote-normalized text: undefined pairs are removed or folded to null,
// bare NaN becomes the string "NaN" so it survives parsing (the cleaner
// turns it into math.NaN() when ConvertNaN is set), and trailing commas
// are stripped last so pair removal can leave them behind.
func rewriteTokens(s string, opts *Options) string {
	if opts.RemoveUndefined {
		s = undefinedPairPattern.ReplaceAllString(s, "")
	}
	s = undefinedTokenPattern.ReplaceAllString(s, "${1}null")
	s = nanTokenPattern.ReplaceAllString(s, `${1}"NaN"`)
	s = trailingCommaPattern.ReplaceAllString(s, "$1")
	return s
}

// RepairText rewrites near-JSON text into valid JSON without parsing it
// into a tree. It runs the same pipeline as [Parse] — quote
// normalization, token rewriting, trailing-comma stripping — and
// validates the result. Text the pipeline cannot fix is handed to the
// jsonrepair library for a second chance. Valid JSON input is returned
// unchanged.
//
// Returns an error wrapping [ErrParse] when the text stays invalid, and
// an error wrapping [ErrInvalidOptions] when opts fails validation.
//
// Example usage:
//
//	fixed, err := laxjson.RepairText("{'a': 1,}", nil)
//	// fixed == `{"a": 1}`
func RepairText(s string, opts *Options) (string, error) {
	resolved := withDefaults(opts)
	if err := resolved.validate(); err != nil {
		return "", err
	}
	return repairText(s, &resolved)
}

func repairText(s string, opts *Options) (string, error) {
	if json.Valid([]byte(s)) {
		return s, nil
	}

	candidate := rewriteTokens(NormalizeQuotes(s), opts)
	if json.Valid([]byte(candidate)) {
		return candidate, nil
	}

	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	if !json.Valid([]byte(repaired)) {
		return "", fmt.Errorf("%w: repaired text is still not valid JSON", ErrParse)
	}
	return repaired, nil
}
