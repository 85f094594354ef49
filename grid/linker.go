package grid

import (
	"strings"

	"github.com/tsawler/schedgrid/clock"
	"github.com/tsawler/schedgrid/model"
)

// LinkEntries walks the assembled cell rows in vertical order and emits one
// ScheduleEntry per populated column of every time row.
//
// The layout contract of these grids is fixed-offset: a time row at index i is
// preceded by its style/class row at i-1 and its instructor row at i-2. Rows
// out of range substitute an empty cell row rather than failing, so a grid
// that opens with a time row still links (with blank style and instructor).
// The first row under the header holds the per-column room labels and is
// consulted for every entry. A column whose time cell does not parse is
// skipped for that row only.
func LinkEntries(cellRows []model.CellRow, columns []model.Column, day string, cfg Config) []model.ScheduleEntry {
	if len(cellRows) == 0 {
		return nil
	}

	roomRow := cellRows[0]
	empty := model.EmptyCellRow(columns)

	var entries []model.ScheduleEntry
	for i, row := range cellRows {
		if !IsTimeRow(row, cfg) {
			continue
		}

		styleRow := empty
		if i-1 >= 0 {
			styleRow = cellRows[i-1]
		}
		instructorRow := empty
		if i-2 >= 0 {
			instructorRow = cellRows[i-2]
		}

		for _, col := range columns {
			timeText := model.CleanText(row[col.Name])
			if timeText == "" || !clock.IsTimeCell(timeText) {
				continue
			}

			slot, err := clock.ParseRange(timeText)
			if err != nil {
				continue
			}

			division := CanonicalDivision(col.Name)
			styleText := model.CleanText(styleRow[col.Name])
			instructorText := model.CleanText(instructorRow[col.Name])

			className := styleText
			if className == "" {
				className = division + " Class"
			}

			var rawParts []string
			for _, part := range []string{styleText, instructorText, timeText} {
				if part != "" {
					rawParts = append(rawParts, part)
				}
			}

			entries = append(entries, model.ScheduleEntry{
				ClassName:  className,
				Instructor: instructorText,
				Room:       model.CleanText(roomRow[col.Name]),
				Day:        day,
				StartTime:  slot.Start,
				EndTime:    slot.End,
				Duration:   slot.Duration,
				Style:      styleText,
				Division:   division,
				Level:      division,
				IsAudition: containsAudition(className, instructorText),
				RawText:    strings.Join(rawParts, " | "),
			})
		}
	}

	return entries
}

// ExtractEntries runs the full grid pipeline on one page's tokens: header
// location, row banding, cell assembly, and record linking. day is the
// page-level day context. The second return reports whether a header row was
// located at all, which callers use to distinguish "page without a grid" from
// "grid with no linkable rows".
func ExtractEntries(tokens []model.Token, day string, cfg Config) ([]model.ScheduleEntry, bool) {
	header, ok := LocateHeader(tokens, cfg)
	if !ok {
		return nil, false
	}

	bands := BandTokens(tokens, header, cfg)
	if len(bands) == 0 {
		return nil, true
	}

	cellRows := make([]model.CellRow, 0, len(bands))
	for _, band := range bands {
		cellRows = append(cellRows, AssembleCells(band, header.Columns))
	}

	return LinkEntries(cellRows, header.Columns, day, cfg), true
}

func containsAudition(className, instructor string) bool {
	combined := strings.ToLower(className + " " + instructor)
	return strings.Contains(combined, "audition")
}
