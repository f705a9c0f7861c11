// Package id validates and formats saved-report identifiers.
package id

import "fmt"

// reportIDLen is the length of a backend report ID (a 24-char hex object ID).
const reportIDLen = 24

// Valid reports whether s looks like a backend report ID. The backend rejects
// malformed IDs too; checking here keeps a typo from costing a round trip.
func Valid(s string) bool {
	if len(s) != reportIDLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Short returns a compact display form: the last 6 characters of the ID.
func Short(s string) string {
	if len(s) <= 6 {
		return s
	}
	return s[len(s)-6:]
}

// Parse validates s and returns it unchanged, or an error naming the ID.
func Parse(s string) (string, error) {
	if !Valid(s) {
		return "", fmt.Errorf("invalid report ID %q: want %d hex characters", s, reportIDLen)
	}
	return s, nil
}
