// Package freetext recovers schedule entries from pages whose slots are
// printed as description lines rather than grid cells, e.g.
//
//	10:00-10:45 Battle Rock — Gev Manoukian
//
// It is a second extraction strategy whose output unions with the grid pass
// before normalization, where duplicates between the two are collapsed.
package freetext

import (
	"regexp"
	"strings"

	"github.com/tsawler/schedgrid/clock"
	"github.com/tsawler/schedgrid/model"
	"github.com/tsawler/schedgrid/normalize"
)

// Description pages are the breakout-room sections of these schedules, so
// their entries carry placement the grid header cannot supply.
const (
	breakoutRoom     = "Breakout Ballroom"
	breakoutDivision = "Breakout"
)

// descLineRe splits a description line into its leading time range and the
// class/instructor remainder.
var descLineRe = regexp.MustCompile(`(?i)^(\d{1,2}:\d{2}(?:\s*(?:am|pm))?\s*-\s*\d{1,2}:\d{2}(?:\s*(?:am|pm))?)\s+(.+)$`)

// noiseTokens mark schedule filler lines that look like classes but are not.
var noiseTokens = []string{
	"CLASS BREAK",
	"LUNCH BREAK",
	"TEACHER MEETING",
	"WAKE UP WITH WEST COAST",
	"DRESSING ROOMS OPEN",
	"WEEKEND WRAP UP",
	"FACULTY PERFORMANCE",
	"SCHOLARSHIP AWARDS",
	"COMPETITION STARTS",
}

// IsNoise reports whether text is schedule filler (breaks, meetings,
// announcements) rather than a class.
func IsNoise(text string) bool {
	if model.CleanText(text) == "" {
		return true
	}
	upper := strings.ToUpper(text)
	for _, token := range noiseTokens {
		if strings.Contains(upper, token) {
			return true
		}
	}
	return false
}

// SplitClassInstructor splits a description remainder into class name and
// instructor. Em-dash and pipe both act as separators; with no separator the
// whole remainder is the class name.
func SplitClassInstructor(text string) (className, instructor string) {
	normalized := strings.ReplaceAll(text, "—", "|")
	parts := make([]string, 0, 2)
	for _, p := range strings.Split(normalized, "|") {
		if cleaned := model.CleanText(p); cleaned != "" {
			parts = append(parts, cleaned)
		}
	}
	switch len(parts) {
	case 0:
		return model.CleanText(text), ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[1]
	}
}

// ExtractEntries scans a page's raw text for description lines and emits one
// entry per parseable line. day is the page-level day context; lines whose
// time range fails to parse are skipped.
func ExtractEntries(pageText, day string) []model.ScheduleEntry {
	var entries []model.ScheduleEntry

	for _, line := range strings.Split(pageText, "\n") {
		line = model.CleanText(line)
		m := descLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		remainder := m[2]
		if IsNoise(remainder) {
			continue
		}

		slot, err := clock.ParseRange(m[1])
		if err != nil {
			continue
		}

		className, instructor := SplitClassInstructor(remainder)
		if className == "" {
			continue
		}

		entries = append(entries, model.ScheduleEntry{
			ClassName:  className,
			Instructor: instructor,
			Room:       breakoutRoom,
			Day:        day,
			Division:   breakoutDivision,
			StartTime:  slot.Start,
			EndTime:    slot.End,
			Duration:   slot.Duration,
			Style:      normalize.InferStyle(className),
			IsAudition: strings.Contains(strings.ToLower(className), "audition"),
			RawText:    line,
		})
	}

	return entries
}
