// Package schedgrid recovers structured schedule records from documents whose
// tabular layout exists only as visually-positioned text. Column positions
// are inferred from division header labels, rows from vertical proximity, and
// each time row is linked to the class and instructor rows printed above it
// to produce one normalized record per populated grid cell.
//
// Basic usage:
//
//	entries, warnings, err := schedgrid.Open("schedule.pdf").Entries()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", schedgrid.FormatWarnings(warnings))
//	}
//
// With options:
//
//	entries, _, err := schedgrid.Open("schedule.pdf").
//	    Pages(1, 2).
//	    DefaultDay("Sunday").
//	    Entries()
//
// For advanced use cases, the lower-level grid and reader packages are also
// available.
package schedgrid

import (
	"fmt"
	"strings"

	"github.com/tsawler/schedgrid/reader"
)

// Open opens a schedule document and returns an Extractor for fluent
// configuration. The returned Extractor must be closed when done, either
// explicitly via Close() or implicitly when calling a terminal operation
// like Entries().
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// The caller remains responsible for closing the reader.
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		source:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// PageSource supplies page content for extraction. *reader.Reader is the
// standard implementation; custom sources are useful when tokens come from
// somewhere other than a PDF on disk.
type PageSource interface {
	PageCount() int
	Page(num int) (reader.PageData, error)
}

// FromSource creates an Extractor over an arbitrary page source. The caller
// owns the source's lifecycle.
func FromSource(src PageSource) *Extractor {
	return &Extractor{
		source:       src,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Warning describes a non-fatal issue encountered during extraction, such as
// a page that yielded no tokens. Extraction succeeded but the output may be
// missing that page's records.
type Warning struct {
	Page    int // 1-indexed; 0 when not page-specific
	Message string
}

// FormatWarnings renders warnings as a single semicolon-separated string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, "; ")
}

// String renders the warning with its page context.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustEntries wraps a call to Entries() and panics if the error is non-nil,
// discarding warnings.
func MustEntries[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
