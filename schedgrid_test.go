package schedgrid

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/schedgrid/grid"
	"github.com/tsawler/schedgrid/model"
	"github.com/tsawler/schedgrid/reader"
)

// fakeSource serves canned pages so the extraction pipeline can run without
// a document on disk.
type fakeSource struct {
	pages []reader.PageData
	errs  map[int]error
}

func (f *fakeSource) PageCount() int { return len(f.pages) }

func (f *fakeSource) Page(num int) (reader.PageData, error) {
	if err := f.errs[num]; err != nil {
		return reader.PageData{}, err
	}
	return f.pages[num-1], nil
}

// schedulePage builds a minimal grid page: a three-division header with an
// instructor, style, and time band under the JUNIOR column plus a second time
// cell under TEEN.
func schedulePage(text, timeCell string) reader.PageData {
	return reader.PageData{
		Text: text,
		Tokens: []model.Token{
			{Text: "MINI", X0: 80, X1: 120, Top: 10, Bottom: 18},
			{Text: "JUNIOR", X0: 280, X1: 320, Top: 10, Bottom: 18},
			{Text: "TEEN", X0: 480, X1: 520, Top: 10, Bottom: 18},
			{Text: "J. Smith", X0: 285, X1: 315, Top: 26, Bottom: 34},
			{Text: "Hip Hop", X0: 285, X1: 315, Top: 36, Bottom: 44},
			{Text: timeCell, X0: 285, X1: 315, Top: 46, Bottom: 54},
			{Text: timeCell, X0: 485, X1: 515, Top: 46, Bottom: 54},
		},
	}
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.pdf")

	_, _, err := Open(path).Entries()
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("err = %v, want ErrInputNotFound", err)
	}
}

func TestOpenNoFilename(t *testing.T) {
	_, _, err := Open("").Entries()
	if err == nil {
		t.Error("empty filename should fail before any page is processed")
	}
}

func TestInvalidPageRangeFailsFast(t *testing.T) {
	_, _, err := Open("whatever.pdf").PageRange(5, 2).Entries()
	if err == nil {
		t.Error("inverted page range should surface as an error")
	}
}

func TestConfigurationChainsDoNotMutate(t *testing.T) {
	base := Open("schedule.pdf")

	custom := base.
		RowThreshold(8).
		DefaultDay("Sunday").
		FreeText(false).
		Pages(1, 2)

	if base.options.gridConfig.RowThreshold != grid.DefaultConfig().RowThreshold {
		t.Error("RowThreshold leaked into the base extractor")
	}
	if base.options.defaults.Day == "Sunday" {
		t.Error("DefaultDay leaked into the base extractor")
	}
	if !base.options.freeText {
		t.Error("FreeText leaked into the base extractor")
	}
	if len(base.options.pages) != 0 {
		t.Error("Pages leaked into the base extractor")
	}

	if custom.options.gridConfig.RowThreshold != 8 {
		t.Errorf("custom RowThreshold = %g, want 8", custom.options.gridConfig.RowThreshold)
	}
	if custom.options.defaults.Day != "Sunday" {
		t.Errorf("custom day = %q, want Sunday", custom.options.defaults.Day)
	}
	if len(custom.options.pages) != 2 {
		t.Errorf("custom pages = %v, want [1 2]", custom.options.pages)
	}
}

func TestWarningFormatting(t *testing.T) {
	warnings := []Warning{
		{Page: 3, Message: "page yielded no tokens"},
		{Message: "free-text pass disabled"},
	}

	if got := warnings[0].String(); got != "page 3: page yielded no tokens" {
		t.Errorf("String() = %q", got)
	}

	joined := FormatWarnings(warnings)
	want := "page 3: page yielded no tokens; free-text pass disabled"
	if joined != want {
		t.Errorf("FormatWarnings = %q, want %q", joined, want)
	}
}

func TestEntriesDayCarriesAcrossPages(t *testing.T) {
	src := &fakeSource{pages: []reader.PageData{
		schedulePage("Saturday Class Schedule", "7:30-8:15"),
		schedulePage("", "9:00-9:45"),
	}}

	entries, _, err := FromSource(src).DefaultDay("Friday").Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}
	for _, entry := range entries {
		if entry.Day != "Saturday" {
			t.Errorf("%s at %s: day = %q, want Saturday carried from page 1",
				entry.ClassName, entry.StartTime, entry.Day)
		}
	}
}

func TestEntriesInsufficientStructure(t *testing.T) {
	src := &fakeSource{pages: []reader.PageData{
		{
			Text: "Welcome to the convention weekend",
			Tokens: []model.Token{
				{Text: "Welcome", X0: 100, X1: 160, Top: 10, Bottom: 18},
			},
		},
	}}

	_, _, err := FromSource(src).Entries()
	if !errors.Is(err, ErrInsufficientStructure) {
		t.Fatalf("err = %v, want ErrInsufficientStructure", err)
	}
	if strings.Contains(err.Error(), "no time rows linked") {
		t.Errorf("err = %v, should not mention a header when none was found", err)
	}
}

func TestEntriesHeaderWithoutTimeRows(t *testing.T) {
	src := &fakeSource{pages: []reader.PageData{
		{
			Tokens: []model.Token{
				{Text: "MINI", X0: 80, X1: 120, Top: 10, Bottom: 18},
				{Text: "JUNIOR", X0: 280, X1: 320, Top: 10, Bottom: 18},
				{Text: "TEEN", X0: 480, X1: 520, Top: 10, Bottom: 18},
			},
		},
	}}

	_, _, err := FromSource(src).Entries()
	if !errors.Is(err, ErrInsufficientStructure) {
		t.Fatalf("err = %v, want ErrInsufficientStructure", err)
	}
	if !strings.Contains(err.Error(), "no time rows linked") {
		t.Errorf("err = %v, want the header-without-rows variant", err)
	}
}

func TestEntriesRecoversFromPageError(t *testing.T) {
	src := &fakeSource{
		pages: []reader.PageData{
			{},
			schedulePage("Sunday Class Schedule", "10:00-10:45"),
		},
		errs: map[int]error{1: errors.New("content stream corrupt")},
	}

	entries, warnings, err := FromSource(src).Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("remaining pages should still produce entries")
	}

	found := false
	for _, w := range warnings {
		if w.Page == 1 && strings.Contains(w.Message, "content stream corrupt") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want one for the failing page", warnings)
	}
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must should panic on a non-nil error")
		}
	}()
	Must(0, errors.New("boom"))
}

func TestMustReturnsValue(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must = %d, want 42", got)
	}
}

func TestMustEntriesPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustEntries should panic on a non-nil error")
		}
	}()
	MustEntries([]model.ScheduleEntry(nil), nil, errors.New("boom"))
}

func TestMustEntriesReturnsValue(t *testing.T) {
	want := []model.ScheduleEntry{{ClassName: "Ballet"}}
	got := MustEntries(want, []Warning{{Page: 1, Message: "noise"}}, nil)
	if len(got) != 1 || got[0].ClassName != "Ballet" {
		t.Errorf("MustEntries = %v, want %v", got, want)
	}
}
