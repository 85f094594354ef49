package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/schedgrid/model"
)

func sampleEntries() []model.ScheduleEntry {
	return []model.ScheduleEntry{
		{
			ClassName:  "Hip Hop",
			Instructor: "J. Smith",
			Room:       "Studio B",
			Day:        "Saturday",
			StartTime:  "07:30",
			EndTime:    "08:15",
			Duration:   45,
			Style:      "Hip Hop",
			Division:   "Junior",
			Level:      "Junior",
			IsAudition: false,
			RawText:    "Hip Hop | J. Smith | 7:30-8:15",
		},
		{
			ClassName:  "Audición de Ballet, Avanzado",
			Instructor: "María Pérez",
			Room:       "Main Ballroom",
			Day:        "Sunday",
			StartTime:  "10:00",
			EndTime:    "11:00",
			Duration:   60,
			Division:   "Teen/Senior",
			Level:      "All Levels",
			IsAudition: true,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleEntries()))

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}),
		"output should start with a UTF-8 BOM")

	records, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus two data rows")

	assert.Equal(t, model.EntryFieldNames, records[0])

	first := records[1]
	assert.Equal(t, "Hip Hop", first[0])
	assert.Equal(t, "J. Smith", first[1])
	assert.Equal(t, "45", first[6])
	assert.Equal(t, "false", first[11])

	second := records[2]
	assert.Equal(t, "Audición de Ballet, Avanzado", second[0],
		"non-ASCII and comma-bearing fields must round-trip")
	assert.Equal(t, "María Pérez", second[1])
	assert.Equal(t, "true", second[11])
}

func TestWriteCSVQuotesSeparators(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleEntries()))

	text := buf.String()
	assert.Contains(t, text, `"Audición de Ballet, Avanzado"`,
		"fields containing the separator must be quoted")
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1, "empty input still writes the header row")
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, WriteCSVFile(path, sampleEntries()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(data), "Hip Hop")
}
