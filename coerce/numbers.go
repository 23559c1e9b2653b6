package coerce

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// Float64 converts any numeric value to float64. It accepts every int and
// uint width, both float widths, json.Number, and decimal.Decimal. The
// boolean result reports whether value was numeric at all; strings are
// deliberately not accepted here, that is [ToNumberDeep]'s job.
func Float64(value any) (float64, bool) {
	switch number := value.(type) {
	case float64:
		return number, true
	case float32:
		return float64(number), true
	case int:
		return float64(number), true
	case int8:
		return float64(number), true
	case int16:
		return float64(number), true
	case int32:
		return float64(number), true
	case int64:
		return float64(number), true
	case uint:
		return float64(number), true
	case uint8:
		return float64(number), true
	case uint16:
		return float64(number), true
	case uint32:
		return float64(number), true
	case uint64:
		return float64(number), true
	case json.Number:
		parsed, err := number.Float64()
		return parsed, err == nil
	case decimal.Decimal:
		parsed, _ := number.Float64()
		return parsed, true
	default:
		return 0, false
	}
}

// Int64 converts any numeric value to int64. Floats convert only when
// they hold an exact integer within the int64 range; uint64 values above
// math.MaxInt64 are rejected rather than clamped.
func Int64(value any) (int64, bool) {
	switch number := value.(type) {
	case int:
		return int64(number), true
	case int8:
		return int64(number), true
	case int16:
		return int64(number), true
	case int32:
		return int64(number), true
	case int64:
		return number, true
	case uint:
		if uint64(number) > math.MaxInt64 {
			return 0, false
		}
		return int64(number), true
	case uint8:
		return int64(number), true
	case uint16:
		return int64(number), true
	case uint32:
		return int64(number), true
	case uint64:
		if number > math.MaxInt64 {
			return 0, false
		}
		return int64(number), true
	case float32:
		return Int64(float64(number))
	case float64:
		if math.IsNaN(number) || math.IsInf(number, 0) || number != math.Trunc(number) {
			return 0, false
		}
		if number > float64(math.MaxInt64) || number < float64(math.MinInt64) {
			return 0, false
		}
		return int64(number), true
	case json.Number:
		parsed, err := number.Int64()
		return parsed, err == nil
	case decimal.Decimal:
		if !number.IsInteger() {
			return 0, false
		}
		return number.IntPart(), true
	default:
		return 0, false
	}
}
