// =============================================================================
// eb2ez - Input Validation
// =============================================================================
//
// This module validates the input file before any processing happens:
//   1. The file exists
//   2. It carries a .csv extension (case-insensitive)
//   3. Its header row contains every expected Eventbrite column
//
// ERROR HANDLING:
//   Each failure mode has its own error type so callers embedding the
//   pipeline as a library can distinguish them with errors.As. The CLI
//   renders each as a single diagnostic line and stops; no output file is
//   created on any validation failure.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/cnsv-tools/eb2ez/internal/csvparser"
	"github.com/cnsv-tools/eb2ez/pkg/utils"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// NotFoundError reports a missing input file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Path)
}

// ExtensionError reports an input file without a .csv extension.
type ExtensionError struct {
	Path string
}

func (e *ExtensionError) Error() string {
	return fmt.Sprintf("%s is not a CSV file", e.Path)
}

// HeaderError reports an input file whose header row is missing expected
// Eventbrite columns.
type HeaderError struct {
	Path    string
	Missing []string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s is not an Eventbrite Attendee Report (missing headers: %s)",
		e.Path, strings.Join(e.Missing, ", "))
}

// ReadError reports a failure to read or decode the input file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError reports a failure to write the output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("error generating output file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// =============================================================================
// VALIDATION FUNCTIONS
// =============================================================================

// CheckFile validates that the input file exists and is a CSV file.
//
// RETURNS:
//   - nil if the file passes both checks.
//   - A *NotFoundError or *ExtensionError otherwise.
func CheckFile(path string) error {
	if !utils.FileExists(path) {
		return &NotFoundError{Path: path}
	}

	if !utils.HasExtension(path, ".csv") {
		return &ExtensionError{Path: path}
	}

	return nil
}

// CheckHeaders validates that the file's header row contains every expected
// column. Extra columns are allowed and order is irrelevant.
//
// PARAMETERS:
//   - path: The path to the input file.
//   - expected: The required header names.
//
// RETURNS:
//   - nil if every expected header is present.
//   - A *HeaderError naming the missing headers, or a *ReadError if the
//     header row cannot be read.
func CheckHeaders(path string, expected []string) error {
	headers, err := csvparser.ReadHeader(path)
	if err != nil {
		return &ReadError{Path: path, Err: err}
	}

	present := make(map[string]bool, len(headers))
	for _, header := range headers {
		present[header] = true
	}

	var missing []string
	for _, header := range expected {
		if !present[header] {
			missing = append(missing, header)
		}
	}

	if len(missing) > 0 {
		return &HeaderError{Path: path, Missing: missing}
	}

	return nil
}
