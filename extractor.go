package schedgrid

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tsawler/schedgrid/freetext"
	"github.com/tsawler/schedgrid/grid"
	"github.com/tsawler/schedgrid/model"
	"github.com/tsawler/schedgrid/normalize"
	"github.com/tsawler/schedgrid/reader"
)

// Extractor provides a fluent interface for recovering schedule entries from
// a document. Each configuration method returns a new Extractor instance,
// making configuration chains safe to fork and reuse.
type Extractor struct {
	// Source
	filename string

	// Reader lifecycle
	reader       *reader.Reader
	source       PageSource
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool

	// Configuration
	options ExtractOptions
	logger  *zap.Logger

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// Each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		reader:       e.reader,
		source:       e.source,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		logger:       e.logger,
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	if _, err := os.Stat(e.filename); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, e.filename)
		}
		return fmt.Errorf("stat %s: %w", e.filename, err)
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		return fmt.Errorf("opening %s: %w", e.filename, err)
	}
	e.reader = r
	e.source = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		return err
	}
	return nil
}

// log returns the configured logger, or a no-op logger when none is set.
func (e *Extractor) log() *zap.Logger {
	if e.logger != nil {
		return e.logger
	}
	return zap.NewNop()
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
func (e *Extractor) PageRange(first, last int) *Extractor {
	newExt := e.clone()
	if first < 1 || last < first {
		newExt.err = fmt.Errorf("invalid page range %d-%d", first, last)
		return newExt
	}
	for p := first; p <= last; p++ {
		newExt.options.pages = append(newExt.options.pages, p)
	}
	return newExt
}

// GridConfig replaces the geometric tuning constants for the grid pipeline.
func (e *Extractor) GridConfig(cfg grid.Config) *Extractor {
	newExt := e.clone()
	newExt.options.gridConfig = cfg
	return newExt
}

// RowThreshold overrides the vertical banding threshold in points.
func (e *Extractor) RowThreshold(points float64) *Extractor {
	newExt := e.clone()
	newExt.options.gridConfig.RowThreshold = points
	return newExt
}

// DefaultDay sets the day substituted for entries when no day marker was
// seen on or before their page.
func (e *Extractor) DefaultDay(day string) *Extractor {
	newExt := e.clone()
	newExt.options.defaults.Day = day
	return newExt
}

// Defaults replaces the full set of normalization defaults.
func (e *Extractor) Defaults(d normalize.Defaults) *Extractor {
	newExt := e.clone()
	newExt.options.defaults = d
	return newExt
}

// FreeText enables or disables the free-text description pass that runs
// alongside the grid pass. It is enabled by default.
func (e *Extractor) FreeText(enabled bool) *Extractor {
	newExt := e.clone()
	newExt.options.freeText = enabled
	return newExt
}

// WithLogger attaches a logger used for page-level diagnostics. Without one,
// diagnostics are dropped.
func (e *Extractor) WithLogger(logger *zap.Logger) *Extractor {
	newExt := e.clone()
	newExt.logger = logger
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Entries runs the extraction pipeline over the configured pages and returns
// the normalized, deduplicated schedule entries in encounter order. This is a
// terminal operation that closes the underlying reader on every path.
//
// Per-page anomalies (no tokens, degenerate geometry) are recovered locally:
// the page yields zero records, a warning is recorded, and processing
// continues. Whole-document structural failure — no page ever produced a
// record — returns ErrInsufficientStructure.
func (e *Extractor) Entries() ([]model.ScheduleEntry, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pageNumbers, err := e.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	logger := e.log()
	warnings := append([]Warning(nil), e.warnings...)

	var candidates []model.ScheduleEntry
	currentDay := ""
	headerSeen := false

	for _, num := range pageNumbers {
		pd, err := e.source.Page(num)
		if err != nil {
			warnings = append(warnings, Warning{Page: num, Message: err.Error()})
			logger.Warn("page extraction anomaly", zap.Int("page", num), zap.Error(err))
			continue
		}

		if day := grid.DetectDay(pd.Text); day != "" {
			currentDay = day
			logger.Debug("day marker", zap.Int("page", num), zap.String("day", day))
		}

		if len(pd.Tokens) == 0 && pd.Text == "" {
			warnings = append(warnings, Warning{Page: num, Message: "page yielded no tokens"})
			logger.Debug("empty page skipped", zap.Int("page", num))
			continue
		}

		gridEntries, hasHeader := grid.ExtractEntries(pd.Tokens, currentDay, e.options.gridConfig)
		headerSeen = headerSeen || hasHeader
		candidates = append(candidates, gridEntries...)

		if e.options.freeText {
			candidates = append(candidates, freetext.ExtractEntries(pd.Text, currentDay)...)
		}

		logger.Debug("page processed",
			zap.Int("page", num),
			zap.Int("tokens", len(pd.Tokens)),
			zap.Bool("grid", hasHeader),
			zap.Int("entries", len(gridEntries)))
	}

	entries := normalize.Normalize(candidates, e.options.defaults)
	if len(entries) == 0 {
		if headerSeen {
			return nil, warnings, fmt.Errorf("%w (a division header row was found but no time rows linked to it)", ErrInsufficientStructure)
		}
		return nil, warnings, ErrInsufficientStructure
	}

	return entries, warnings, nil
}

// PageCount returns the number of pages in the document without running
// extraction. The reader stays open for further calls.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureReader(); err != nil {
		return 0, err
	}
	return e.source.PageCount(), nil
}

// resolvePages expands the configured page selection into 1-indexed page
// numbers, defaulting to every page, dropping duplicates, and rejecting
// out-of-range requests.
func (e *Extractor) resolvePages() ([]int, error) {
	total := e.source.PageCount()

	if len(e.options.pages) == 0 {
		all := make([]int, total)
		for i := range all {
			all[i] = i + 1
		}
		return all, nil
	}

	seen := make(map[int]bool, len(e.options.pages))
	resolved := make([]int, 0, len(e.options.pages))
	for _, p := range e.options.pages {
		if p < 1 || p > total {
			return nil, fmt.Errorf("page %d out of range 1-%d", p, total)
		}
		if !seen[p] {
			seen[p] = true
			resolved = append(resolved, p)
		}
	}
	return resolved, nil
}
