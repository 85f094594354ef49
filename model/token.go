package model

import "strings"

// Token is one run of extracted text with a bounding box on a page.
// Coordinates follow the extraction convention: X grows rightward, Y grows
// downward, so Top < Bottom for every token.
type Token struct {
	Text   string
	X0, X1 float64
	Top    float64
	Bottom float64
}

// CenterX returns the horizontal center of the token.
func (t Token) CenterX() float64 {
	return (t.X0 + t.X1) / 2
}

// CenterY returns the vertical center of the token.
func (t Token) CenterY() float64 {
	return (t.Top + t.Bottom) / 2
}

// Column is a horizontally-anchored group of tokens sharing a canonical
// header label. Columns are derived once per page from the header row and
// never change afterward.
type Column struct {
	Name    string // uppercased header label as printed
	CenterX float64
}

// Band is a vertically-proximate cluster of tokens treated as one logical
// table row. Tokens appear in the order they were clustered.
type Band []Token

// CellRow maps a column name to the assembled cell text for one Band.
type CellRow map[string]string

// EmptyCellRow returns a CellRow with an empty cell for each column.
func EmptyCellRow(columns []Column) CellRow {
	row := make(CellRow, len(columns))
	for _, col := range columns {
		row[col.Name] = ""
	}
	return row
}

// CleanText collapses all runs of whitespace (including newlines) to single
// spaces and trims the result. Empty and nil-ish input maps to "".
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
