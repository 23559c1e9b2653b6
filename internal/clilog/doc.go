// Package clilog provides the compact slog handler the laxjson CLI
// installs in verbose mode: one line per record, colored level tag when
// the output is a terminal, attributes JSON-encoded at the end of the
// line.
package clilog
