// =============================================================================
// eb2ez - Attendee Report Parser
// =============================================================================
//
// This module parses the Eventbrite Attendee Report CSV. The export is a
// plain comma-delimited UTF-8 file with a single header row followed by one
// row per attendee.
//
// Field values are preserved byte-for-byte: the output format treats a
// lone-space value differently from an empty one, so the parser must not
// trim or otherwise normalize values.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
)

// Report represents a parsed attendee report.
type Report struct {
	// Headers contains the column headers in source order.
	Headers []string

	// Rows contains the attendee rows as maps of header -> value.
	Rows []map[string]string

	// SourceFile is the path to the source CSV file.
	SourceFile string

	// RowCount is the number of attendee rows (excluding the header).
	RowCount int

	// ColumnCount is the number of columns in the header row.
	ColumnCount int
}

// Parse reads an attendee report and returns the parsed data.
//
// PARAMETERS:
//   - path: The path to the report CSV file.
//
// RETURNS:
//   - A pointer to the Report containing headers and attendee rows.
//   - An error if the file cannot be read or decoded.
//
// Rows shorter than the header are padded with empty values. Every data
// row produces one output row; a row of all-empty cells still represents an
// attendee and is kept. (encoding/csv already skips truly blank lines.)
func Parse(path string) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader)

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers := allRows[0]
	rows := extractRows(allRows[1:], headers)

	return &Report{
		Headers:     headers,
		Rows:        rows,
		SourceFile:  path,
		RowCount:    len(rows),
		ColumnCount: len(headers),
	}, nil
}

// ReadHeader reads only the header row of a report.
// Used by validation to check the header set without loading the whole file.
func ReadHeader(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader)

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	return headers, nil
}

// configureReader configures the CSV reader for Eventbrite exports.
func configureReader(reader *csv.Reader) {
	reader.Comma = ','

	// Attendee rows occasionally have fewer fields than the header when the
	// export truncates trailing empty columns.
	reader.FieldsPerRecord = -1

	reader.LazyQuotes = true
}

// extractRows converts raw data rows to maps keyed by header.
func extractRows(raw [][]string, headers []string) []map[string]string {
	rows := make([]map[string]string, 0, len(raw))

	for _, row := range raw {
		rowMap := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				rowMap[header] = row[i]
			} else {
				// Column is missing in this row.
				rowMap[header] = ""
			}
		}

		rows = append(rows, rowMap)
	}

	return rows
}
