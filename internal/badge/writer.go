// =============================================================================
// eb2ez - Upload File Writer
// =============================================================================
//
// This module serializes transformed rows into the EZ Badge upload format.
// The format is CSV-like but not RFC 4180:
//   - Every line, header included, ends with a trailing comma before the
//     newline (legacy requirement of the upload parser)
//   - A value is quoted only when it is a lone space or contains a comma,
//     double quote, CR, or LF; the empty string is emitted unquoted
//   - Absent or empty values become a single-space placeholder, which the
//     quoting rule then wraps as " "
//
// Because of these rules the document is rendered by hand rather than with
// encoding/csv. The whole document is built in memory and written in one
// atomic step, so a failure never leaves a partial upload file behind.
//
// =============================================================================

package badge

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/cnsv-tools/eb2ez/internal/validation"
	"github.com/cnsv-tools/eb2ez/pkg/utils"
)

// NeedsQuoting reports whether a value must be quoted in the upload format.
//
// True when the value is exactly one space, or contains a comma, double
// quote, carriage return, or line feed. Everything else, including the
// empty string, is emitted unquoted.
func NeedsQuoting(value string) bool {
	if value == " " {
		return true
	}
	return strings.ContainsAny(value, ",\"\r\n")
}

// FormatValue formats a single value for output, quoting only when
// necessary. Embedded double quotes are doubled before wrapping.
func FormatValue(value string) string {
	if !NeedsQuoting(value) {
		return value
	}
	return "\"" + strings.ReplaceAll(value, "\"", "\"\"") + "\""
}

// BuildRow joins formatted values with commas and appends the trailing
// comma and newline. The same function renders the header row and every
// data row.
func BuildRow(values []string) string {
	var builder strings.Builder

	for _, value := range values {
		builder.WriteString(FormatValue(value))
		builder.WriteByte(',')
	}
	builder.WriteByte('\n')

	return builder.String()
}

// DeriveOutputPath derives the upload file path from the input path by
// inserting the suffix before the extension.
//
// Example: "reports/attendees.csv" -> "reports/attendees_EZ_BADGE_UPLOAD.csv"
func DeriveOutputPath(inputPath, suffix string) string {
	dir := filepath.Dir(inputPath)
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(filepath.Base(inputPath), ext)

	return filepath.Join(dir, stem+suffix+ext)
}

// Render builds the complete upload document.
//
// PARAMETERS:
//   - columns: The ordered output column names.
//   - rows: The transformed attendee rows, keyed by output column name.
//   - placeholder: The value substituted for absent or empty fields.
//
// RETURNS:
//   - The rendered document bytes.
//
// Every output line has exactly len(columns) values; columns a row does not
// carry are filled with the placeholder.
func Render(columns []string, rows []map[string]string, placeholder string) []byte {
	var buffer bytes.Buffer

	buffer.WriteString(BuildRow(columns))

	values := make([]string, len(columns))
	for _, row := range rows {
		for i, column := range columns {
			value, ok := row[column]
			if !ok || value == "" {
				value = placeholder
			}
			values[i] = value
		}
		buffer.WriteString(BuildRow(values))
	}

	return buffer.Bytes()
}

// WriteFile writes the rendered document to the output path atomically.
//
// RETURNS:
//   - nil on success.
//   - A *validation.WriteError if the file cannot be written; in that case
//     no file exists at the output path.
func WriteFile(path string, document []byte) error {
	if err := utils.AtomicWriteFile(path, document, 0644); err != nil {
		return &validation.WriteError{Path: path, Err: err}
	}
	return nil
}
