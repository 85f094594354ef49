package grid

// Config holds the geometric tuning constants for grid reconstruction.
type Config struct {
	// Minimum distinct header-label tokens required before a page is
	// treated as containing a schedule grid.
	MinHeaderLabels int

	// Vertical bucket size (points) used to cluster header candidates into
	// rows; absorbs sub-pixel misalignment between labels.
	HeaderBucket float64

	// Margin (points) below the header row; only tokens strictly below
	// header bottom + margin participate in row banding.
	HeaderMargin float64

	// Maximum vertical-center distance (points) between consecutive tokens
	// in the same band. Too small fragments wrapped cells into multiple
	// bands; too large merges adjacent printed rows.
	RowThreshold float64

	// Minimum number of time-shaped cells for a band to classify as a
	// time row. Requiring at least 2 suppresses false positives from
	// incidental numeric text.
	MinTimeCells int
}

// DefaultConfig returns the tuning constants observed to work on convention
// schedule grids.
func DefaultConfig() Config {
	return Config{
		MinHeaderLabels: 3,
		HeaderBucket:    5,
		HeaderMargin:    2,
		RowThreshold:    4,
		MinTimeCells:    2,
	}
}
