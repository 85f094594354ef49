package reader

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/schedgrid/model"
)

// assembleTokens merges the raw text runs of a content stream into word
// tokens. PDF content streams position runs individually (often a glyph or a
// few at a time), so runs sharing a baseline are sorted left to right and
// glued together while the horizontal gap between them stays below a fraction
// of the font size. Whitespace runs always terminate the current word.
//
// PDF coordinates grow upward; tokens are emitted in the extraction
// convention (Y down), so Top = height - baseline - fontSize and
// Bottom = height - baseline.
func assembleTokens(runs []pdf.Text, height float64) []model.Token {
	if len(runs) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y // top of page first
		}
		return sorted[i].X < sorted[j].X
	})

	var tokens []model.Token
	var word strings.Builder
	var x0, x1, baseline, fontSize float64

	flush := func() {
		text := strings.TrimSpace(word.String())
		if text != "" {
			size := fontSize
			if size <= 0 {
				size = 10
			}
			tokens = append(tokens, model.Token{
				Text:   text,
				X0:     x0,
				X1:     x1,
				Top:    height - baseline - size,
				Bottom: height - baseline,
			})
		}
		word.Reset()
	}

	for _, run := range sorted {
		if strings.TrimSpace(run.S) == "" {
			flush()
			continue
		}

		gap := run.X - x1
		sameLine := word.Len() > 0 && math.Abs(run.Y-baseline) < 0.5
		joinable := sameLine && gap >= -0.5 && gap <= wordGap(run.FontSize)

		if !joinable {
			flush()
			x0 = run.X
			baseline = run.Y
			fontSize = run.FontSize
		}

		word.WriteString(run.S)
		x1 = run.X + run.W
		if run.FontSize > fontSize {
			fontSize = run.FontSize
		}
	}
	flush()

	return tokens
}

// wordGap is the widest horizontal gap still treated as intra-word spacing.
func wordGap(fontSize float64) float64 {
	if fontSize <= 0 {
		return 1.0
	}
	return fontSize * 0.25
}
