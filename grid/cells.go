package grid

import (
	"sort"
	"strings"

	"github.com/tsawler/schedgrid/clock"
	"github.com/tsawler/schedgrid/model"
)

// AssembleCells joins a band's tokens into per-column cell text. Tokens are
// taken left to right, each assigned to its nearest column, and a column's
// accumulated token texts are joined with single spaces.
func AssembleCells(band model.Band, columns []model.Column) model.CellRow {
	pieces := make(map[string][]string, len(columns))

	sorted := make(model.Band, len(band))
	copy(sorted, band)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X0 < sorted[j].X0
	})

	for _, tok := range sorted {
		col := AssignColumn(columns, tok.CenterX())
		if text := model.CleanText(tok.Text); text != "" {
			pieces[col.Name] = append(pieces[col.Name], text)
		}
	}

	row := model.EmptyCellRow(columns)
	for name, tokens := range pieces {
		row[name] = strings.Join(tokens, " ")
	}
	return row
}

// IsTimeRow reports whether a cell row holds at least cfg.MinTimeCells
// non-empty cells matching the time grammar.
func IsTimeRow(row model.CellRow, cfg Config) bool {
	count := 0
	for _, value := range row {
		if value != "" && clock.IsTimeCell(value) {
			count++
		}
	}
	return count >= cfg.MinTimeCells
}
