package laxjson

import (
	"fmt"
	"log/slog"

	"github.com/leofalp/laxjson/dates"
)

// Options controls both the repair stage of [Parse] and the cleaning pass
// of [Clean]. The zero value disables every conversion and removal, which
// makes Parse a lenient but otherwise faithful JSON parse.
type Options struct {
	// ConvertNumbers converts numeric strings to float64 during cleaning
	// and allows numeric input to Parse. Only plain decimal notation
	// counts; hex floats and digit separators stay strings.
	ConvertNumbers bool
	// ConvertNaN converts strings equal to exactly "NaN" to math.NaN()
	// during cleaning and allows NaN float input to Parse.
	ConvertNaN bool
	// ConvertBooleans converts "true"/"false" strings to bool.
	ConvertBooleans bool
	// ConvertDates converts ISO-8601 strings, and strings matching
	// DateFormats, to time.Time.
	ConvertDates bool
	// ConvertHTML converts markup-looking strings to Markdown.
	ConvertHTML bool

	// RemoveNulls drops null nodes during cleaning.
	RemoveNulls bool
	// RemoveUndefined removes "key": undefined pairs at the repair stage.
	// When false, undefined tokens are rewritten to null instead.
	RemoveUndefined bool
	// RemoveEmptyObjects drops mappings that are empty after cleaning.
	// The root is always kept.
	RemoveEmptyObjects bool
	// RemoveEmptyArrays drops sequences that are empty after cleaning.
	// The root is always kept.
	RemoveEmptyArrays bool
	// StrictMode drops strings that no conversion claimed, and every
	// non-string scalar.
	StrictMode bool
	// CheckNonStringKeys makes the emptiness check of a cleaned
	// map[any]any count non-string keys as content.
	CheckNonStringKeys bool

	// DateFormats lists custom formats tried after ISO-8601, in order.
	DateFormats []dates.Format
	// DateCacheSize, when positive, enables an LRU memo for date-string
	// parses inside a Cleaner. Zero disables the cache.
	DateCacheSize int

	// LogOnFail logs recovered parse failures through Logger.
	LogOnFail bool
	// Logger is the destination for LogOnFail. Nil means slog.Default().
	Logger *slog.Logger
	// OnError is invoked with every recovered parse failure. Nil means no-op.
	OnError func(error)
}

// withDefaults returns a defensive copy of opts with nil mapped to the
// zero value, so callers can pass nil for "all defaults".
func withDefaults(opts *Options) Options {
	if opts == nil {
		return Options{}
	}
	return *opts
}

// validate checks the fields that can hold invalid values. The typed
// struct makes most invalid shapes unrepresentable; the rest is checked
// here.
func (o *Options) validate() error {
	if o.DateCacheSize < 0 {
		return fmt.Errorf("%w: DateCacheSize must not be negative, got %d", ErrInvalidOptions, o.DateCacheSize)
	}
	for _, format := range o.DateFormats {
		if !dates.Supported(format) {
			return fmt.Errorf("%w: unknown date format %q", ErrInvalidOptions, format)
		}
	}
	return nil
}

// logger returns the configured logger or the process default.
func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// reportFailure surfaces a recovered parse failure via the optional log
// and the optional callback. It never rethrows.
func (o *Options) reportFailure(err error, snippet string) {
	if o.LogOnFail {
		o.logger().Warn("laxjson: parse failed", "error", err, "input", snippet)
	}
	if o.OnError != nil {
		o.OnError(err)
	}
}
