// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package logging

import (
	"strings"
	"unicode"
)

// MaxFieldLength bounds client-supplied strings copied into log fields.
const MaxFieldLength = 64

// SanitizeValue makes a client-supplied value (query parameter, path
// segment) safe to put in a log field: control characters are dropped and
// the result is truncated to MaxFieldLength.
func SanitizeValue(value string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
	return truncateString(clean, MaxFieldLength)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8Start(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// utf8Start reports whether b begins a UTF-8 sequence.
func utf8Start(b byte) bool {
	return b&0xC0 != 0x80
}
