package schedgrid

import (
	"github.com/tsawler/schedgrid/grid"
	"github.com/tsawler/schedgrid/normalize"
)

// ExtractOptions holds configuration for schedule extraction.
type ExtractOptions struct {
	// Page selection (1-indexed); nil means all pages
	pages []int

	// Geometric tuning for the grid pipeline
	gridConfig grid.Config

	// Field defaults applied during normalization
	defaults normalize.Defaults

	// Whether the free-text description pass runs alongside the grid pass
	freeText bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:      nil,
		gridConfig: grid.DefaultConfig(),
		defaults:   normalize.DefaultDefaults(),
		freeText:   true,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		gridConfig: o.gridConfig,
		defaults:   o.defaults,
		freeText:   o.freeText,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
