package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeForLog(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "plain text unchanged",
			input: "apiserver is running",
			want:  "apiserver is running",
		},
		{
			name:  "newline escaped",
			input: "line one\nline two",
			want:  `line one\nline two`,
		},
		{
			name:  "carriage return and tab escaped",
			input: "a\r\tb",
			want:  `a\r\tb`,
		},
		{
			name:  "backslash escaped",
			input: `C:\container`,
			want:  `C:\\container`,
		},
		{
			name:  "control character escaped",
			input: "bell\x07",
			want:  `bell\a`,
		},
		{
			name:  "non-ascii escaped",
			input: "caf\u00e9",
			want:  `caf\u00e9`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizeForLog(tt.input))
		})
	}
}

func TestSanitizeForLogTruncates(t *testing.T) {
	long := strings.Repeat("x", 500)

	got := SanitizeForLog(long)
	require.Len(t, got, maxLoggedLength+len("...[truncated]"))
	require.True(t, strings.HasSuffix(got, "...[truncated]"))
}
