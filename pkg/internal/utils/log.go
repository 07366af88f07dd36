package utils

import "strconv"

const maxLoggedLength = 200

// SanitizeForLog makes a string captured from an external process safe to
// embed in a log line. Newlines, control characters, and non-ASCII runes are
// replaced with their Go escape sequences, and overly long values are
// truncated.
func SanitizeForLog(s string) string {
	if s == "" {
		return ""
	}

	quoted := strconv.QuoteToASCII(s)
	// Drop the surrounding quotes QuoteToASCII adds.
	escaped := quoted[1 : len(quoted)-1]

	if len(escaped) > maxLoggedLength {
		return escaped[:maxLoggedLength] + "...[truncated]"
	}

	return escaped
}
