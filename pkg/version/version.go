// Package version compares dotted-integer release versions such as those
// published by the container-apiserver project ("0.7.1", "v1.2").
package version

import (
	"strconv"
	"strings"
)

// parts splits a version string like "0.7.1" or "v0.7.1" into its integer
// components. Components that fail to parse as integers are dropped, so
// "1.2.beta" yields [1, 2].
func parts(v string) []int {
	v = strings.TrimLeft(v, "v")
	segments := strings.Split(v, ".")
	components := make([]int, 0, len(segments))
	for _, segment := range segments {
		n, err := strconv.Atoi(segment)
		if err != nil {
			continue
		}
		components = append(components, n)
	}
	return components
}

// IsNewer reports whether latest denotes a strictly newer release than
// current. Components are compared left to right with missing trailing
// components treated as zero, so "1.2" and "1.2.0" are equal. Empty input on
// either side means no comparison is attempted and the result is false. The
// function is total: it never fails, regardless of input.
func IsNewer(latest, current string) bool {
	if latest == "" || current == "" {
		return false
	}

	latestParts := parts(latest)
	currentParts := parts(current)

	n := len(latestParts)
	if len(currentParts) > n {
		n = len(currentParts)
	}
	for i := 0; i < n; i++ {
		l, c := 0, 0
		if i < len(latestParts) {
			l = latestParts[i]
		}
		if i < len(currentParts) {
			c = currentParts[i]
		}
		if l > c {
			return true
		}
		if l < c {
			return false
		}
	}
	return false
}
