// Package system models the state reported by the external container-apiserver
// daemon and parses the text emitted by the `container system status` command.
package system

import (
	"strings"
	"unicode"
)

// SystemStatus is one complete view of the daemon, produced fresh on every
// poll. It is never mutated in place; a later poll supersedes it wholesale.
type SystemStatus struct {
	Installed   bool   `json:"installed"`
	Running     bool   `json:"running"`
	Version     string `json:"version"`
	DataRoot    string `json:"dataRoot"`
	InstallRoot string `json:"installRoot"`
}

const (
	dataRootPrefix    = "application data root:"
	installRootPrefix = "application install root:"
	versionLineMarker = "container-apiserver version:"
)

// ParseStatusOutput maps the raw stdout of `container system status` to a
// SystemStatus. The installed and running flags are not derived from the text;
// they are determined by the caller and passed through unchanged.
//
// The text contract is positional and owned by the external CLI: lines
// prefixed with "application data root:" and "application install root:"
// carry paths, and a line containing "container-apiserver version:" carries
// the daemon version. Each line is trimmed of surrounding whitespace before
// matching, so indented field lines are accepted too. Unrecognized lines are
// ignored, duplicate lines resolve to the last match, and malformed text
// degrades to empty fields. The function never fails.
func ParseStatusOutput(output string, installed, running bool) SystemStatus {
	status := SystemStatus{Installed: installed, Running: running}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, dataRootPrefix):
			status.DataRoot = strings.TrimSpace(line[len(dataRootPrefix):])
		case strings.HasPrefix(line, installRootPrefix):
			status.InstallRoot = strings.TrimSpace(line[len(installRootPrefix):])
		case strings.Contains(line, versionLineMarker):
			status.Version = ExtractVersion(line)
		}
	}
	return status
}

// ExtractVersion pulls a dotted version out of a line such as
//
//	container-apiserver version: container-apiserver version 0.7.1 (build: release)
//
// It finds the last occurrence of "version", skips any colon and whitespace
// that follow, and takes the next whitespace-delimited token, so a trailing
// newline or carriage return never leaks into the version. An empty string
// means no version was found; the function never fails.
func ExtractVersion(line string) string {
	const marker = "version"
	idx := strings.LastIndex(line, marker)
	if idx < 0 {
		return ""
	}
	rest := strings.TrimLeft(line[idx+len(marker):], ": \t")
	if sp := strings.IndexFunc(rest, unicode.IsSpace); sp >= 0 {
		rest = rest[:sp]
	}
	return rest
}
