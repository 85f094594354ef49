// Package reader is the token source for schedule extraction: it opens a PDF
// and exposes, per page, the raw text and the positioned word tokens that the
// grid pipeline consumes.
package reader

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/schedgrid/model"
)

// defaultPageHeight is US Letter in points, used when a page carries no
// usable MediaBox.
const defaultPageHeight = 792.0

// Reader represents an open schedule document.
type Reader struct {
	file   *os.File
	reader *pdf.Reader
}

// Open opens a PDF file and returns a Reader. The caller must Close it.
func Open(filename string) (*Reader, error) {
	file, reader, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &Reader{file: file, reader: reader}, nil
}

// Close closes the underlying file. It is safe to call Close multiple times.
func (r *Reader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.reader.NumPage()
}

// PageData is the extracted content of a single page.
type PageData struct {
	Number int    // 1-indexed
	Text   string // raw page text
	Tokens []model.Token
}

// Page extracts the text and positioned tokens of page number num (1-indexed).
// A page with no content stream yields empty data rather than an error; the
// caller decides whether an empty page is an anomaly.
func (r *Reader) Page(num int) (PageData, error) {
	if num < 1 || num > r.reader.NumPage() {
		return PageData{}, fmt.Errorf("page %d out of range 1-%d", num, r.reader.NumPage())
	}

	page := r.reader.Page(num)
	if page.V.IsNull() {
		return PageData{Number: num}, nil
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		// Positioned tokens may still be recoverable from the content
		// stream even when plain-text assembly fails.
		text = ""
	}

	content := page.Content()
	tokens := assembleTokens(content.Text, pageHeight(page))

	return PageData{Number: num, Text: text, Tokens: tokens}, nil
}

// pageHeight reads the page height from the MediaBox, falling back to US
// Letter when the box is missing or degenerate.
func pageHeight(page pdf.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return defaultPageHeight
	}
	height := box.Index(3).Float64() - box.Index(1).Float64()
	if height <= 0 {
		return defaultPageHeight
	}
	return height
}
