// Package export serializes schedule entries to tabular output. The CSV
// writer emits a fixed header row, a consistent field order, RFC 4180
// quoting, and a UTF-8 byte order mark so spreadsheet applications round-trip
// non-ASCII division and instructor names.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/text/encoding/unicode"

	"github.com/tsawler/schedgrid/model"
)

// WriteCSV writes entries to w with the fixed schedule header row. Field
// order follows model.EntryFieldNames.
func WriteCSV(w io.Writer, entries []model.ScheduleEntry) error {
	bomWriter := unicode.UTF8BOM.NewEncoder().Writer(w)

	cw := csv.NewWriter(bomWriter)
	if err := cw.Write(model.EntryFieldNames); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, entry := range entries {
		record := []string{
			entry.ClassName,
			entry.Instructor,
			entry.Room,
			entry.Day,
			entry.StartTime,
			entry.EndTime,
			strconv.Itoa(entry.Duration),
			entry.Style,
			entry.Division,
			entry.AgeRange,
			entry.Level,
			strconv.FormatBool(entry.IsAudition),
			entry.RawText,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes entries to the named file, creating or truncating it.
func WriteCSVFile(filename string, entries []model.ScheduleEntry) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}

	if err := WriteCSV(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
