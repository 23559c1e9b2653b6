package coerce

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFloat64(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   float64
		wantOK bool
	}{
		{name: "float64", input: 1.5, want: 1.5, wantOK: true},
		{name: "float32", input: float32(2), want: 2, wantOK: true},
		{name: "int", input: -7, want: -7, wantOK: true},
		{name: "int8", input: int8(3), want: 3, wantOK: true},
		{name: "uint64", input: uint64(9), want: 9, wantOK: true},
		{name: "json.Number", input: json.Number("4.25"), want: 4.25, wantOK: true},
		{name: "bad json.Number", input: json.Number("x"), wantOK: false},
		{name: "decimal", input: decimal.RequireFromString("10.5"), want: 10.5, wantOK: true},
		{name: "string rejected", input: "1.5", wantOK: false},
		{name: "bool rejected", input: true, wantOK: false},
		{name: "nil rejected", input: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Float64(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestInt64(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   int64
		wantOK bool
	}{
		{name: "int", input: 42, want: 42, wantOK: true},
		{name: "int64", input: int64(-5), want: -5, wantOK: true},
		{name: "uint32", input: uint32(7), want: 7, wantOK: true},
		{name: "uint64 in range", input: uint64(7), want: 7, wantOK: true},
		{name: "uint64 overflow rejected", input: uint64(math.MaxInt64) + 1, wantOK: false},
		{name: "integral float", input: 512.0, want: 512, wantOK: true},
		{name: "integral float32", input: float32(8), want: 8, wantOK: true},
		{name: "fractional float rejected", input: 1.5, wantOK: false},
		{name: "NaN rejected", input: math.NaN(), wantOK: false},
		{name: "infinity rejected", input: math.Inf(1), wantOK: false},
		{name: "json.Number integer", input: json.Number("99"), want: 99, wantOK: true},
		{name: "json.Number fraction rejected", input: json.Number("1.5"), wantOK: false},
		{name: "integral decimal", input: decimal.RequireFromString("12"), want: 12, wantOK: true},
		{name: "fractional decimal rejected", input: decimal.RequireFromString("12.5"), wantOK: false},
		{name: "string rejected", input: "42", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Int64(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
