// Package laxjson parses and cleans near-JSON text. Data copied out of
// logs, config files, LLM output, or hand-edited fixtures is frequently
// almost JSON: single-quoted strings, trailing commas, bare undefined and
// NaN tokens. This package applies a layered recovery strategy — quote
// normalization, token rewriting, automatic JSON repair — before falling
// back to a clear error, and then runs an option-driven cleaning pass over
// the parsed tree (string-to-number, string-to-bool, string-to-date
// conversion, null and empty-container pruning).
//
// The main entry points are [Parse] for any input, [ParseString] for text,
// [ParseAs] for decoding straight into a typed value, [RepairText] for
// text-to-text repair without parsing, and [Clean] for cleaning an already
// parsed tree.
package laxjson
