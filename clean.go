package laxjson

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/leofalp/laxjson/dates"
)

// markupPattern is a cheap test for "this string carries HTML" before the
// full converter runs.
var markupPattern = regexp.MustCompile(`<[a-zA-Z][^>]*>`)

// Cleaner applies the option-driven cleaning pass to parsed trees. A
// Cleaner validates its options once at construction, so it is the better
// choice over the free [Clean] function when many trees share one
// configuration. Cleaning is pure apart from the optional date cache, and
// a Cleaner without a cache is safe for concurrent use.
type Cleaner struct {
	opts      Options
	dateCache *lru.Cache[string, time.Time]
}

// NewCleaner validates opts and returns a Cleaner. A nil opts means all
// defaults. Returns an error wrapping [ErrInvalidOptions] when validation
// fails.
func NewCleaner(opts *Options) (*Cleaner, error) {
	resolved := withDefaults(opts)
	if err := resolved.validate(); err != nil {
		return nil, err
	}

	cleaner := &Cleaner{opts: resolved}
	if resolved.DateCacheSize > 0 {
		cache, err := lru.New[string, time.Time](resolved.DateCacheSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		}
		cleaner.dateCache = cache
	}
	return cleaner, nil
}

// Clean recursively transforms data according to the Cleaner's options
// and returns the rebuilt tree. The boolean result reports whether the
// node survived at all: false means the value was dropped (a null under
// RemoveNulls, an unconverted string under StrictMode). Containers are
// rebuilt, never mutated in place, and the root container is always kept
// even when empty.
func (c *Cleaner) Clean(data any) (any, bool) {
	return c.cleanNode(data, true)
}

// Clean is the one-shot form of [Cleaner.Clean]: it validates opts, cleans
// data, and reports whether the root value survived. A nil opts means all
// defaults.
//
// Example usage:
//
//	cleaned, _, err := laxjson.Clean(
//		map[string]any{"a": "42"},
//		&laxjson.Options{ConvertNumbers: true},
//	)
//	// cleaned == map[string]any{"a": float64(42)}
func Clean(data any, opts *Options) (any, bool, error) {
	cleaner, err := NewCleaner(opts)
	if err != nil {
		return nil, false, err
	}
	cleaned, kept := cleaner.Clean(data)
	return cleaned, kept, nil
}

func (c *Cleaner) cleanNode(value any, root bool) (any, bool) {
	switch node := value.(type) {
	case nil:
		return nil, !c.opts.RemoveNulls
	case string:
		return c.cleanString(node)
	case []any:
		return c.cleanSlice(node, root)
	case map[string]any:
		return c.cleanStringMap(node, root)
	case map[any]any:
		return c.cleanAnyMap(node, root)
	default:
		// bool, float64, json.Number, time.Time, anything a caller put in
		// the tree by hand.
		return value, !c.opts.StrictMode
	}
}

// cleanString trims and then offers the string to each enabled conversion
// in priority order: NaN, number, boolean, date, HTML. The first
// conversion that claims the string wins. A string nothing claims is kept
// trimmed, unless StrictMode drops it.
func (c *Cleaner) cleanString(s string) (any, bool) {
	trimmed := strings.TrimSpace(s)

	if c.opts.ConvertNaN && trimmed == "NaN" {
		return math.NaN(), true
	}
	if c.opts.ConvertNumbers && isNumericString(trimmed) {
		if number, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(number) && !math.IsInf(number, 0) {
			return number, true
		}
	}
	if c.opts.ConvertBooleans {
		switch strings.ToLower(trimmed) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	if c.opts.ConvertDates {
		if parsed, ok := c.parseDate(trimmed); ok {
			return parsed, true
		}
	}
	if c.opts.ConvertHTML && markupPattern.MatchString(trimmed) {
		if markdown, err := htmltomarkdown.ConvertString(trimmed); err == nil {
			return strings.TrimSpace(markdown), true
		}
	}

	if c.opts.StrictMode {
		return nil, false
	}
	return trimmed, true
}

// isNumericString pre-filters ConvertNumbers candidates. ParseFloat is
// wider than JSON numbers (hex floats, digit separators, "NaN"/"Inf");
// only plain decimal notation, optionally signed and with an exponent,
// counts as a numeric string. Non-finite results are rejected after the
// parse.
func isNumericString(s string) bool {
	return s != "" && !strings.ContainsAny(s, "xXpP_")
}

func (c *Cleaner) parseDate(s string) (time.Time, bool) {
	if c.dateCache != nil {
		if cached, ok := c.dateCache.Get(s); ok {
			return cached, true
		}
	}
	parsed, ok := dates.Detect(s, c.opts.DateFormats)
	if ok && c.dateCache != nil {
		c.dateCache.Add(s, parsed)
	}
	return parsed, ok
}

func (c *Cleaner) cleanSlice(items []any, root bool) (any, bool) {
	cleaned := make([]any, 0, len(items))
	for _, item := range items {
		if value, kept := c.cleanNode(item, false); kept {
			cleaned = append(cleaned, value)
		}
	}
	if len(cleaned) == 0 && c.opts.RemoveEmptyArrays && !root {
		return nil, false
	}
	return cleaned, true
}

func (c *Cleaner) cleanStringMap(fields map[string]any, root bool) (any, bool) {
	cleaned := make(map[string]any, len(fields))
	for key, value := range fields {
		if converted, kept := c.cleanNode(value, false); kept {
			cleaned[key] = converted
		}
	}
	if len(cleaned) == 0 && c.opts.RemoveEmptyObjects && !root {
		return nil, false
	}
	return cleaned, true
}

// cleanAnyMap handles trees built outside encoding/json, where keys are
// not necessarily strings. By default only string keys count as content
// in the emptiness check; CheckNonStringKeys widens the count to every
// key.
func (c *Cleaner) cleanAnyMap(fields map[any]any, root bool) (any, bool) {
	cleaned := make(map[any]any, len(fields))
	for key, value := range fields {
		if converted, kept := c.cleanNode(value, false); kept {
			cleaned[key] = converted
		}
	}

	counted := 0
	for key := range cleaned {
		if _, isString := key.(string); isString || c.opts.CheckNonStringKeys {
			counted++
		}
	}
	if counted == 0 && c.opts.RemoveEmptyObjects && !root {
		return nil, false
	}
	return cleaned, true
}
