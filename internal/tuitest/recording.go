package tuitest

import (
	"regexp"
	"strings"
)

// Recording is the raw byte stream a session painted.
type Recording struct {
	Raw []byte
}

var (
	csiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	oscPattern = regexp.MustCompile(`\x1b\][^\x07]*(\x07|\x1b\\)`)
)

// PlainText returns the whole stream without escape sequences, trailing
// blanks trimmed per line. bubbletea repaints only changed lines, so
// assertions about state reached mid-session search this rather than a
// single screen.
func (r *Recording) PlainText() string {
	if r == nil {
		return ""
	}
	s := strings.ReplaceAll(string(r.Raw), "\r", "")
	s = oscPattern.ReplaceAllString(s, "")
	s = csiPattern.ReplaceAllString(s, "")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Contains reports whether any part of the session rendered substr.
func (r *Recording) Contains(substr string) bool {
	return strings.Contains(r.PlainText(), substr)
}
