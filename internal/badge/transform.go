// =============================================================================
// eb2ez - Transformation Engine
// =============================================================================
//
// This module rewrites attendee rows from Eventbrite's column vocabulary to
// EZ Badge's:
//   - Yes/no question answers become badge labels ("Yes" -> "IEEE" etc.)
//   - Column headers are renamed per the profile's rename map
//
// ORDERING:
//   Value normalization happens before header renaming, and each row is
//   transformed independently of the others.
//
// Empty answers are deliberately left untouched here; substituting the
// placeholder for empty values is the writer's job. The two stages treat
// empty and single-space values differently, and that distinction decides
// which values end up quoted.
//
// =============================================================================

package badge

import (
	"github.com/cnsv-tools/eb2ez/internal/config"
	"github.com/cnsv-tools/eb2ez/internal/csvparser"
)

// NormalizeBooleanField maps a yes/no answer to its badge label.
//
// A literal "Yes" becomes the label, a literal "No" becomes a single space,
// and any other value (including the empty string) passes through unchanged.
func NormalizeBooleanField(value, label string) string {
	switch value {
	case "Yes":
		return label
	case "No":
		return " "
	default:
		return value
	}
}

// RenameHeader maps a source header to its EZ Badge name.
// Headers not in the rename map pass through unchanged.
func RenameHeader(name string, renames map[string]string) string {
	if renamed, ok := renames[name]; ok {
		return renamed
	}
	return name
}

// TransformRows applies the profile's transformations to every row of a
// report.
//
// PARAMETERS:
//   - report: The parsed attendee report.
//   - profile: The report profile with boolean fields and rename map.
//
// RETURNS:
//   - The transformed rows, keyed by renamed header.
func TransformRows(report *csvparser.Report, profile config.Profile) []map[string]string {
	transformed := make([]map[string]string, 0, len(report.Rows))

	for _, row := range report.Rows {
		transformed = append(transformed, transformRow(row, report.Headers, profile))
	}

	return transformed
}

// transformRow normalizes one row's boolean answers and rekeys it by the
// renamed headers.
func transformRow(row map[string]string, headers []string, profile config.Profile) map[string]string {
	normalized := make(map[string]string, len(row))
	for header, value := range row {
		normalized[header] = value
	}

	for _, field := range profile.BooleanFields {
		if value, ok := normalized[field.Header]; ok {
			normalized[field.Header] = NormalizeBooleanField(value, field.Label)
		}
	}

	renamed := make(map[string]string, len(normalized))
	for _, header := range headers {
		renamed[RenameHeader(header, profile.HeaderRenames)] = normalized[header]
	}

	return renamed
}
