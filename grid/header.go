package grid

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/schedgrid/model"
)

// headerLabels is the fixed set of division labels recognized as schedule
// column headers, uppercased, mapped to the canonical division name emitted
// in output records.
var headerLabels = map[string]string{
	"MINI":         "Mini",
	"MINIS":        "Mini",
	"JUNIOR":       "Junior",
	"JUNIORS":      "Junior",
	"TEEN":         "Teen",
	"TEENS":        "Teen",
	"SENIOR":       "Senior",
	"SENIORS":      "Senior",
	"TEEN/SENIOR":  "Teen/Senior",
	"INTERMEDIATE": "Intermediate",
	"BREAKOUT":     "Breakout",
	"RSD":          "RSD",
}

// CanonicalDivision maps a header label to its canonical division name.
// Unknown labels pass through cleaned but otherwise unchanged.
func CanonicalDivision(label string) string {
	if canonical, ok := headerLabels[strings.ToUpper(model.CleanText(label))]; ok {
		return canonical
	}
	return model.CleanText(label)
}

// Header is the located header row of a schedule grid.
type Header struct {
	Columns []model.Column // left-to-right
	Bottom  float64        // max bottom edge of the header tokens
}

// LocateHeader finds the canonical header row among a page's tokens and
// derives one Column per label. Candidates are tokens whose cleaned,
// uppercased text is a known label. They are clustered by vertical position
// into coarse buckets and the densest bucket wins, which keeps stray label
// occurrences elsewhere on the page from hijacking the grid. Returns false
// when fewer than cfg.MinHeaderLabels candidates exist; that page simply
// carries no grid.
func LocateHeader(tokens []model.Token, cfg Config) (Header, bool) {
	var candidates []model.Token
	for _, tok := range tokens {
		if _, ok := headerLabels[strings.ToUpper(model.CleanText(tok.Text))]; ok {
			candidates = append(candidates, tok)
		}
	}
	if len(candidates) < cfg.MinHeaderLabels {
		return Header{}, false
	}

	// Bucket candidates by rounded vertical position; densest bucket is the
	// true header row.
	buckets := make(map[float64][]model.Token)
	for _, tok := range candidates {
		key := math.Round(tok.Top/cfg.HeaderBucket) * cfg.HeaderBucket
		buckets[key] = append(buckets[key], tok)
	}

	var bestKey float64
	best := -1
	for key, group := range buckets {
		if len(group) > best || (len(group) == best && key < bestKey) {
			best = len(group)
			bestKey = key
		}
	}

	labels := buckets[bestKey]
	sort.Slice(labels, func(i, j int) bool {
		return labels[i].X0 < labels[j].X0
	})

	header := Header{Columns: make([]model.Column, 0, len(labels))}
	for _, tok := range labels {
		header.Columns = append(header.Columns, model.Column{
			Name:    strings.ToUpper(model.CleanText(tok.Text)),
			CenterX: tok.CenterX(),
		})
		if tok.Bottom > header.Bottom {
			header.Bottom = tok.Bottom
		}
	}

	return header, true
}

// AssignColumn returns the column whose center is horizontally nearest to
// centerX. Ties resolve to the earliest column in left-to-right order. The
// result is deterministic for a fixed column set.
func AssignColumn(columns []model.Column, centerX float64) model.Column {
	best := 0
	bestDiff := math.Abs(centerX - columns[0].CenterX)
	for i := 1; i < len(columns); i++ {
		diff := math.Abs(centerX - columns[i].CenterX)
		if diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	return columns[best]
}
