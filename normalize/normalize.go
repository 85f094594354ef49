// Package normalize post-processes the unioned output of all extraction
// passes: it fills field defaults, recomputes missing durations, and removes
// duplicate entries produced when multiple strategies recover the same slot.
package normalize

import (
	"strings"

	"github.com/tsawler/schedgrid/clock"
	"github.com/tsawler/schedgrid/model"
)

// Defaults supplies the substitution values used for empty entry fields.
type Defaults struct {
	Instructor string
	Room       string
	Day        string
	Level      string
}

// DefaultDefaults returns the standard field defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		Instructor: "TBD",
		Room:       "Main Ballroom",
		Day:        "Saturday",
		Level:      "All Levels",
	}
}

// Normalize runs once over candidate entries in encounter order. For each
// entry it recomputes the duration from the start/end clocks when unset
// (using the same noon-crossing repair the time parser applies), substitutes
// defaults for empty fields, and drops every entry after the first with the
// same deduplication key. Normalizing an already-normalized slice is a no-op,
// so the operation is idempotent.
func Normalize(entries []model.ScheduleEntry, defaults Defaults) []model.ScheduleEntry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]model.ScheduleEntry, 0, len(entries))

	for _, entry := range entries {
		entry.ClassName = model.CleanText(entry.ClassName)
		entry.Instructor = model.CleanText(entry.Instructor)
		entry.Room = model.CleanText(entry.Room)
		entry.Day = model.CleanText(entry.Day)
		entry.StartTime = model.CleanText(entry.StartTime)
		entry.EndTime = model.CleanText(entry.EndTime)
		entry.Style = model.CleanText(entry.Style)
		entry.Division = model.CleanText(entry.Division)
		entry.AgeRange = model.CleanText(entry.AgeRange)
		entry.Level = model.CleanText(entry.Level)
		entry.RawText = model.CleanText(entry.RawText)

		if entry.Duration <= 0 {
			if d, ok := clock.DurationBetween(entry.StartTime, entry.EndTime); ok {
				entry.Duration = d
			}
		}

		if entry.Instructor == "" {
			entry.Instructor = defaults.Instructor
		}
		if entry.Room == "" {
			entry.Room = defaults.Room
		}
		if entry.Day == "" {
			entry.Day = defaults.Day
		}
		if entry.Level == "" {
			entry.Level = defaults.Level
		}
		if entry.Style == "" {
			entry.Style = InferStyle(entry.ClassName)
		}

		key := entry.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, entry)
	}

	return out
}

// styleKeywords maps class-name substrings to canonical style names, checked
// in order so that more specific phrases win.
var styleKeywords = []struct {
	substr string
	style  string
}{
	{"hip-hop", "Hip Hop"},
	{"hip hop", "Hip Hop"},
	{"contemp", "Contemporary"},
	{"lyric", "Lyrical"},
	{"jazz", "Jazz"},
	{"tap", "Tap"},
	{"ballet", "Ballet"},
	{"acro", "Acro"},
	{"floorwork", "Open"},
	{"audition", "Audition"},
	{"battle", "Hip Hop"},
}

// InferStyle guesses a dance style from a class name. Returns "" when no
// keyword matches.
func InferStyle(className string) string {
	lower := strings.ToLower(model.CleanText(className))
	for _, kw := range styleKeywords {
		if strings.Contains(lower, kw.substr) {
			return kw.style
		}
	}
	return ""
}
