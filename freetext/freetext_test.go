package freetext

import "testing"

func TestExtractEntries(t *testing.T) {
	pageText := "BREAKOUT BALLROOM\n" +
		"10:00-10:45 Battle Rock — Gev Manoukian\n" +
		"11:00-11:45 CLASS BREAK\n" +
		"12:00-12:45pm Contemporary Partnering | Talia Favia\n" +
		"not a schedule line\n"

	entries := ExtractEntries(pageText, "Sunday")
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	first := entries[0]
	if first.ClassName != "Battle Rock" {
		t.Errorf("class name = %q, want Battle Rock", first.ClassName)
	}
	if first.Instructor != "Gev Manoukian" {
		t.Errorf("instructor = %q, want Gev Manoukian", first.Instructor)
	}
	if first.StartTime != "10:00" || first.EndTime != "10:45" || first.Duration != 45 {
		t.Errorf("slot = %s-%s (%d min), want 10:00-10:45 (45 min)",
			first.StartTime, first.EndTime, first.Duration)
	}
	if first.Day != "Sunday" {
		t.Errorf("day = %q, want Sunday", first.Day)
	}
	if first.Style != "Hip Hop" {
		t.Errorf("style = %q, want Hip Hop inferred from the battle keyword", first.Style)
	}
	if first.Room != "Breakout Ballroom" || first.Division != "Breakout" {
		t.Errorf("placement = %q/%q, want Breakout Ballroom/Breakout",
			first.Room, first.Division)
	}

	second := entries[1]
	if second.ClassName != "Contemporary Partnering" {
		t.Errorf("class name = %q, want Contemporary Partnering", second.ClassName)
	}
	if second.StartTime != "12:00" {
		t.Errorf("start = %q, want 12:00", second.StartTime)
	}
}

func TestExtractEntriesSkipsBadTimes(t *testing.T) {
	entries := ExtractEntries("7:99-8:15 Phantom Class — Nobody\n", "Saturday")
	if len(entries) != 0 {
		t.Errorf("got %d entries from an unparseable time range, want 0", len(entries))
	}
}

func TestIsNoise(t *testing.T) {
	noisy := []string{"LUNCH BREAK", "Teacher Meeting in Hall A", "", "  "}
	for _, s := range noisy {
		if !IsNoise(s) {
			t.Errorf("IsNoise(%q) = false, want true", s)
		}
	}
	if IsNoise("Contemporary Partnering") {
		t.Error("real class flagged as noise")
	}
}

func TestSplitClassInstructor(t *testing.T) {
	tests := []struct {
		input      string
		class      string
		instructor string
	}{
		{"Battle Rock — Gev Manoukian —", "Battle Rock", "Gev Manoukian"},
		{"Advanced Tap | Bowman", "Advanced Tap", "Bowman"},
		{"Just a Class", "Just a Class", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		class, instructor := SplitClassInstructor(tt.input)
		if class != tt.class || instructor != tt.instructor {
			t.Errorf("SplitClassInstructor(%q) = (%q, %q), want (%q, %q)",
				tt.input, class, instructor, tt.class, tt.instructor)
		}
	}
}
