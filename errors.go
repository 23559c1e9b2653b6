package laxjson

import "errors"

// Common errors returned by the laxjson package.
var (
	// ErrInvalidOptions is returned when an Options value fails validation,
	// for example an unsupported date format or a negative cache size.
	ErrInvalidOptions = errors.New("invalid options")
	// ErrUnsupportedInput is returned by Parse for input kinds it cannot
	// handle, such as numeric input without the enabling conversion option.
	ErrUnsupportedInput = errors.New("unsupported input")
	// ErrParse is returned when text stays unparsable after every repair
	// stage has run.
	ErrParse = errors.New("failed to parse data")
)
