// Package parse decodes raw recognized text into typed field values.
//
// Every function is a pure function of its input string and reports absence
// with a false ok result rather than an error: OCR output is noisy by nature
// and a field that fails to parse is an expected outcome, not a fault.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	weekPattern     = regexp.MustCompile(`(?i)week\s*(\d+)`)
	scorePattern    = regexp.MustCompile(`\d[\d,. ]*`)
	durationPattern = regexp.MustCompile(`(?:(\d{1,2}):)?(\d{1,2}):(\d{2})`)
	ordinalPattern  = regexp.MustCompile(`^\d+\.\s*`)
)

// WeekNumber extracts a week number from banner text such as "Week 7".
// Matching is case-insensitive; the first match wins.
func WeekNumber(s string) (int, bool) {
	m := weekPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Score extracts an unsigned score from a value cell. The first run of
// digits wins; embedded thousands separators (comma, period, space) are
// tolerated because the overlay font renders them inconsistently.
func Score(s string) (int64, bool) {
	m := scorePattern.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, m)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// DurationSeconds extracts a clear time of the form "mm:ss" or "hh:mm:ss"
// and returns it in seconds.
func DurationSeconds(s string) (int, bool) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	hours := 0
	if m[1] != "" {
		h, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		hours = h
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, false
	}

	return hours*3600 + minutes*60 + seconds, true
}

// PlayerLines splits a name-column cell into candidate player names: one
// name per line, trimmed, empty lines dropped, and any leading ordinal
// prefix ("1. ", "2. ", ...) stripped.
func PlayerLines(s string) []string {
	var names []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = ordinalPattern.ReplaceAllString(line, "")
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}
