package laxjson

import "testing"

// TestNormalizeQuotes covers the scanner's quote and escape handling:
// plain single-quoted objects, mixed quoting, embedded quotes of the
// other kind, escaped single quotes, and unknown escapes.
func TestNormalizeQuotes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single-quoted object",
			input: `{'a':'b'}`,
			want:  `{"a":"b"}`,
		},
		{
			name:  "already double-quoted passes through",
			input: `{"a":"b"}`,
			want:  `{"a":"b"}`,
		},
		{
			name:  "mixed quoting",
			input: `{'a':"b",'c':'d'}`,
			want:  `{"a":"b","c":"d"}`,
		},
		{
			name:  "double quote inside single-quoted string gets escaped",
			input: `{'a':'say "hi"'}`,
			want:  `{"a":"say \"hi\""}`,
		},
		{
			name:  "escaped single quote becomes bare quote",
			input: `{'a':'it\'s'}`,
			want:  `{"a":"it's"}`,
		},
		{
			name:  "valid escape preserved in double-quoted string",
			input: `{"a":"line\nbreak"}`,
			want:  `{"a":"line\nbreak"}`,
		},
		{
			name:  "valid escape preserved across requoting",
			input: `{'a':'tab\there'}`,
			want:  `{"a":"tab\there"}`,
		},
		{
			name:  "unknown escape doubled to read literally",
			input: `{"path":"C:\x"}`,
			want:  `{"path":"C:\\x"}`,
		},
		{
			name:  "single quote inside double-quoted string untouched",
			input: `{"a":"it's"}`,
			want:  `{"a":"it's"}`,
		},
		{
			name:  "unicode escape preserved",
			input: `{'a':'\u00e9'}`,
			want:  `{"a":"\u00e9"}`,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "no strings at all",
			input: `[1, 2, 3]`,
			want:  `[1, 2, 3]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeQuotes(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeQuotes(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestNormalizeQuotes_TrailingBackslash verifies the scanner never loses a
// dangling backslash at end of input.
func TestNormalizeQuotes_TrailingBackslash(t *testing.T) {
	got := NormalizeQuotes(`{"a":"b` + `\`)
	want := `{"a":"b\\`
	if got != want {
		t.Errorf("NormalizeQuotes() = %q, want %q", got, want)
	}
}
