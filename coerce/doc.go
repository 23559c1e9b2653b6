// Package coerce provides standalone pure transforms over loosely-typed
// values and trees: scalar casts (any to float64/int64), deep
// string/number rendering, digit extraction, and the two boolean
// interpretations (content truthiness versus explicit representation).
// Each transform is independent of the parsing pipeline and of the
// others; none mutates its input.
package coerce
