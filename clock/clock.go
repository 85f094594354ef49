// Package clock parses the time grammar used in schedule grids: a single
// clock ("7:30", "7:30am") or a range ("7:30-8:15am", "13:00-14:00"), with
// optional meridiems that may appear on either side of a range.
package clock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Range is a parsed time slot, always rendered in zero-padded 24-hour clock.
type Range struct {
	Start    string // HH:MM
	End      string // HH:MM
	Duration int    // minutes
}

// DefaultDuration is assumed when a cell carries only a start time.
const DefaultDuration = 60

var (
	rangeRe  = regexp.MustCompile(`^(\d{1,2}:\d{2})(am|pm)?-(\d{1,2}:\d{2})(am|pm)?$`)
	singleRe = regexp.MustCompile(`^(\d{1,2}:\d{2})(am|pm)?$`)
	clockRe  = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

	// cellRe recognizes whole cells that are time-shaped; used by row
	// classification before any parsing is attempted.
	cellRe = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}(?:\s*(?:am|pm))?(?:\s*-\s*\d{1,2}:\d{2}(?:\s*(?:am|pm))?)?$`)
)

// IsTimeCell reports whether text, after whitespace collapsing, matches the
// time grammar. It accepts both the single and range shapes.
func IsTimeCell(text string) bool {
	return cellRe.MatchString(strings.Join(strings.Fields(text), " "))
}

// ParseRange parses a time cell into a Range.
//
// Accepted shapes, case-insensitive, internal whitespace ignored:
//
//	7:30-8:15am
//	7:30am-8:15am
//	13:00-14:00
//	7:30am
//
// When exactly one side of a range carries a meridiem, the other side
// inherits it. A range whose computed duration is not positive is repaired by
// adding twelve hours; this is a deliberate approximation for ranges that
// cross noon without an explicit meridiem flip, not general day wraparound.
// A bare single time is given a 60-minute default duration.
func ParseRange(value string) (Range, error) {
	text := strings.ToLower(strings.Join(strings.Fields(value), ""))
	if text == "" {
		return Range{}, fmt.Errorf("empty time cell")
	}

	if m := rangeRe.FindStringSubmatch(text); m != nil {
		startClock, startMer, endClock, endMer := m[1], m[2], m[3], m[4]

		// One-sided meridiems propagate to the bare side.
		if startMer == "" && endMer != "" {
			startMer = endMer
		}
		if startMer != "" && endMer == "" {
			endMer = startMer
		}

		start, err := clockToMinutes(startClock, startMer)
		if err != nil {
			return Range{}, fmt.Errorf("start %q: %w", startClock, err)
		}
		end, err := clockToMinutes(endClock, endMer)
		if err != nil {
			return Range{}, fmt.Errorf("end %q: %w", endClock, err)
		}

		duration := end - start
		if duration <= 0 {
			duration += 12 * 60
		}

		return Range{
			Start:    minutesToHHMM(start),
			End:      minutesToHHMM(start + duration),
			Duration: duration,
		}, nil
	}

	if m := singleRe.FindStringSubmatch(text); m != nil {
		start, err := clockToMinutes(m[1], m[2])
		if err != nil {
			return Range{}, fmt.Errorf("time %q: %w", m[1], err)
		}
		return Range{
			Start:    minutesToHHMM(start),
			End:      minutesToHHMM(start + DefaultDuration),
			Duration: DefaultDuration,
		}, nil
	}

	return Range{}, fmt.Errorf("unrecognized time cell %q", value)
}

// DurationBetween computes end-start in minutes for two HH:MM clocks,
// applying the same half-day repair as ParseRange. It returns false when
// either clock is not a plain H:MM / HH:MM string.
func DurationBetween(start, end string) (int, bool) {
	sm := clockRe.FindStringSubmatch(strings.TrimSpace(start))
	em := clockRe.FindStringSubmatch(strings.TrimSpace(end))
	if sm == nil || em == nil {
		return 0, false
	}

	sh, _ := strconv.Atoi(sm[1])
	smin, _ := strconv.Atoi(sm[2])
	eh, _ := strconv.Atoi(em[1])
	emin, _ := strconv.Atoi(em[2])

	duration := (eh*60 + emin) - (sh*60 + smin)
	if duration <= 0 {
		duration += 12 * 60
	}
	return duration, true
}

// clockToMinutes converts an H:MM clock to minutes since midnight. With a
// meridiem the hour must be 1-12 (12 maps to 0 before the pm offset); without
// one the hour must be 0-23.
func clockToMinutes(clockText, meridiem string) (int, error) {
	m := clockRe.FindStringSubmatch(clockText)
	if m == nil {
		return 0, fmt.Errorf("malformed clock")
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if minute > 59 {
		return 0, fmt.Errorf("minute %d out of range", minute)
	}

	if meridiem != "" {
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("hour %d out of 12-hour range", hour)
		}
		if hour == 12 {
			hour = 0
		}
		if meridiem == "pm" {
			hour += 12
		}
	} else if hour > 23 {
		return 0, fmt.Errorf("hour %d out of 24-hour range", hour)
	}

	return hour*60 + minute, nil
}

// minutesToHHMM renders minutes-since-midnight as zero-padded 24-hour HH:MM,
// wrapping at midnight.
func minutesToHHMM(total int) string {
	normalized := total % (24 * 60)
	return fmt.Sprintf("%02d:%02d", normalized/60, normalized%60)
}
