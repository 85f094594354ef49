package model

import "strings"

// ScheduleEntry is one normalized output record describing a single
// division/class/time slot recovered from a schedule grid.
type ScheduleEntry struct {
	ClassName  string
	Instructor string
	Room       string
	Day        string
	StartTime  string // 24-hour HH:MM
	EndTime    string // 24-hour HH:MM
	Duration   int    // minutes
	Style      string
	Division   string
	AgeRange   string
	Level      string
	IsAudition bool
	RawText    string
}

// Key returns the deduplication key for the entry. Two entries with the same
// day, start time, class name, division, and room (case-insensitive for the
// text fields) describe the same slot.
func (e ScheduleEntry) Key() string {
	return strings.Join([]string{
		e.Day,
		e.StartTime,
		strings.ToLower(e.ClassName),
		strings.ToLower(e.Division),
		strings.ToLower(e.Room),
	}, "\x1f")
}

// EntryFieldNames is the fixed serialization order for ScheduleEntry fields.
var EntryFieldNames = []string{
	"class_name",
	"instructor",
	"room",
	"day",
	"start_time",
	"end_time",
	"duration",
	"style",
	"division",
	"age_range",
	"level",
	"is_audition",
	"raw_text",
}
