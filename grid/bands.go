package grid

import (
	"math"
	"sort"

	"github.com/tsawler/schedgrid/model"
)

// BandTokens clusters the tokens below the header into ordered bands, one per
// visual table row. Only tokens strictly below header.Bottom + cfg.HeaderMargin
// participate. Tokens are sorted by vertical center and clustered in a single
// pass: a token whose center is within cfg.RowThreshold of the previous
// token's center extends the current band, anything farther starts a new one.
// O(n log n) for the sort, O(n) for the pass; correct as long as printed rows
// do not overlap vertically.
func BandTokens(tokens []model.Token, header Header, cfg Config) []model.Band {
	cutoff := header.Bottom + cfg.HeaderMargin

	var below []model.Token
	for _, tok := range tokens {
		if tok.Top > cutoff {
			below = append(below, tok)
		}
	}
	if len(below) == 0 {
		return nil
	}

	sort.SliceStable(below, func(i, j int) bool {
		return below[i].CenterY() < below[j].CenterY()
	})

	var bands []model.Band
	current := model.Band{below[0]}
	lastY := below[0].CenterY()

	for _, tok := range below[1:] {
		y := tok.CenterY()
		if math.Abs(y-lastY) <= cfg.RowThreshold {
			current = append(current, tok)
		} else {
			bands = append(bands, current)
			current = model.Band{tok}
		}
		lastY = y
	}
	bands = append(bands, current)

	return bands
}
