package grid

import (
	"regexp"
	"strings"
)

var (
	dayMarkerRe = regexp.MustCompile(`(?i)\b(Thursday|Friday|Saturday|Sunday)\b(?:,\s+[A-Za-z]+\s+\d{1,2})?`)

	schedulePhraseRe = regexp.MustCompile(`(?i)\b(friday|saturday|sunday)\s+class\s+schedule\b`)
)

// DetectDay scans a page's raw text for an explicit day marker and returns
// the day name in title case, or "" when the page carries none. A
// "<day> class schedule" phrase takes precedence over a bare weekday mention,
// since grids often cite other days in footnotes.
func DetectDay(pageText string) string {
	if m := schedulePhraseRe.FindStringSubmatch(pageText); m != nil {
		return titleDay(m[1])
	}
	if m := dayMarkerRe.FindStringSubmatch(pageText); m != nil {
		return titleDay(m[1])
	}
	return ""
}

func titleDay(day string) string {
	day = strings.ToLower(day)
	return strings.ToUpper(day[:1]) + day[1:]
}
