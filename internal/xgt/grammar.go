package xgt

import "strings"

// Helpers for the address grammar. Inputs are expected to be upper-cased already.

// containsAny reports whether s contains any of chars.
func containsAny(s string, chars []byte) bool {
	for _, c := range chars {
		if strings.IndexByte(s, c) >= 0 {
			return true
		}
	}
	return false
}

// hasAnyPrefix reports whether s starts with any of prefixes.
func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// countAny returns the total number of occurrences of chars in s.
func countAny(s string, chars []byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(string(chars), s[i]) >= 0 {
			n++
		}
	}
	return n
}

// exactlyOneOf reports whether exactly one occurrence of chars appears in s.
func exactlyOneOf(s string, chars []byte) bool {
	return countAny(s, chars) == 1
}

// splitOnFirstOf splits s around the first character of chars (in chars order)
// that s contains. ok is false when s contains none of them.
func splitOnFirstOf(s string, chars []byte) (before string, sep byte, after string, ok bool) {
	for _, c := range chars {
		if i := strings.IndexByte(s, c); i >= 0 {
			return s[:i], c, s[i+1:], true
		}
	}
	return s, 0, "", false
}
