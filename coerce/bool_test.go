package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBooleanContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty is false", input: "", want: false},
		{name: "whitespace is false", input: "   ", want: false},
		{name: "false word", input: "false", want: false},
		{name: "false word any case", input: "FALSE", want: false},
		{name: "zero", input: "0", want: false},
		{name: "no", input: "no", want: false},
		{name: "n", input: "N", want: false},
		{name: "off", input: "off", want: false},
		{name: "nan", input: "NaN", want: false},
		{name: "null", input: "null", want: false},
		{name: "undefined", input: "undefined", want: false},
		{name: "padded falsy word", input: "  off  ", want: false},
		{name: "true word", input: "true", want: true},
		{name: "arbitrary content is true", input: "hello", want: true},
		{name: "nonzero number is true", input: "2", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToBooleanContent(tt.input))
		})
	}
}

func TestToBooleanExplicit(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   bool
		wantOK bool
	}{
		{name: "bool true", input: true, want: true, wantOK: true},
		{name: "bool false", input: false, want: false, wantOK: true},
		{name: "int one", input: 1, want: true, wantOK: true},
		{name: "int zero", input: 0, want: false, wantOK: true},
		{name: "float one", input: 1.0, want: true, wantOK: true},
		{name: "other number rejected", input: 2, wantOK: false},
		{name: "string true", input: "true", want: true, wantOK: true},
		{name: "string TRUE padded", input: "  TRUE ", want: true, wantOK: true},
		{name: "string zero", input: "0", want: false, wantOK: true},
		{name: "yes rejected", input: "yes", wantOK: false},
		{name: "nil rejected", input: nil, wantOK: false},
		{name: "struct rejected", input: struct{}{}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToBooleanExplicit(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToBooleanContentDeep(t *testing.T) {
	input := map[string]any{
		"a":    "yes please",
		"b":    "off",
		"c":    float64(3),
		"list": []any{"", "x"},
	}

	got := ToBooleanContentDeep(input).(map[string]any)

	assert.Equal(t, true, got["a"])
	assert.Equal(t, false, got["b"])
	assert.Equal(t, float64(3), got["c"])
	assert.Equal(t, []any{false, true}, got["list"])
}
