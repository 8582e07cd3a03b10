// =============================================================================
// eb2ez - Report Profile Configuration
// =============================================================================
//
// This module defines the report profile: the fixed tables that describe the
// shape of an Eventbrite Attendee Report and the EZ Badge upload format
// derived from it.
//
// PROFILE CONTENTS:
//   1. Expected input headers (the report must contain all of them)
//   2. Header rename map (Eventbrite names -> EZ Badge names)
//   3. Boolean attendee questions and the badge labels they map to
//   4. Output column list, in the exact order EZ Badge expects
//   5. Output file naming and placeholder conventions
//
// The built-in profile matches the standard Eventbrite export and is the
// one used in production. An override file (--config) can replace individual
// tables, for example when Eventbrite renames a question; unset fields fall
// back to the built-in values.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// PROFILE STRUCTURE
// =============================================================================

// Profile holds the tables driving the conversion pipeline.
// All fields are fixed for a given run; the pipeline never mutates them.
type Profile struct {
	// ExpectedHeaders is the set of column headers an Eventbrite Attendee
	// Report must contain. Extra columns are allowed, order is irrelevant,
	// but a report missing any of these is rejected.
	ExpectedHeaders []string `yaml:"expected_headers"`

	// HeaderRenames maps Eventbrite column names to the names EZ Badge
	// expects. Headers not present in the map pass through unchanged.
	HeaderRenames map[string]string `yaml:"header_renames"`

	// BooleanFields lists the yes/no attendee questions whose answers are
	// rewritten to badge labels ("Yes" -> label, "No" -> a single space).
	BooleanFields []BooleanField `yaml:"boolean_fields"`

	// OutputColumns is the exact, ordered list of columns in the upload
	// file. Columns with no corresponding source field (the "Are you on
	// CNSV BOD?" and "CB 6:*" columns) always emit the placeholder; they
	// are reserved for manual fill-in downstream.
	OutputColumns []string `yaml:"output_columns"`

	// OutputSuffix is inserted before the extension when deriving the
	// output file name. "attendees.csv" -> "attendees_EZ_BADGE_UPLOAD.csv".
	OutputSuffix string `yaml:"output_suffix"`

	// Placeholder is substituted for absent or empty output values.
	// EZ Badge requires a quoted single space rather than an empty field.
	Placeholder string `yaml:"placeholder"`
}

// BooleanField describes one yes/no question column and the badge label a
// "Yes" answer maps to.
type BooleanField struct {
	// Header is the source column name in the Eventbrite report.
	Header string `yaml:"header"`

	// Label replaces the literal answer "Yes". A literal "No" becomes the
	// placeholder; any other value (including empty) is left untouched.
	Label string `yaml:"label"`
}

// =============================================================================
// BUILT-IN PROFILE
// =============================================================================

// Default returns the built-in Eventbrite -> EZ Badge profile.
// Callers receive a fresh copy; modifying it does not affect later calls.
func Default() Profile {
	return Profile{
		ExpectedHeaders: []string{
			"Order #", "Order Date", "First Name", "Last Name", "Email", "Quantity",
			"Price Tier", "Ticket Type", "Attendee #", "Group", "Order Type", "Currency",
			"Total Paid", "Fees Paid", "Eventbrite Fees", "Eventbrite Payment Processing",
			"Attendee Status", "Home Address 1", "Home Address 2", "Home City", "Home State",
			"Home Zip", "Home Country", "How did you hear about this event?", "Are you a consultant?",
			"Are you an IEEE member?", "Are you an IEEE-CNSV Member?", "Where are you located (city+state or city+country)",
			"Please tell us where you heard about this event", "Of which IEEE Societies and/or Affinity Groups are you a member?",
			"Job Title", "Company",
		},
		HeaderRenames: map[string]string{
			"First Name":                   "FirstName",
			"Last Name":                    "LastName",
			"Company":                      "Company or Organization",
			"Are you an IEEE member?":      "IEEE?",
			"Are you an IEEE-CNSV Member?": "CNSV?",
		},
		BooleanFields: []BooleanField{
			{Header: "Are you a consultant?", Label: "Consultant"},
			{Header: "Are you an IEEE member?", Label: "IEEE"},
			{Header: "Are you an IEEE-CNSV Member?", Label: "CNSV"},
		},
		OutputColumns: []string{
			"FirstName", "LastName", "Email", "Company or Organization", "IEEE?", "CNSV?",
			"Are you a consultant?", "Are you on CNSV BOD?", "CB 6:1 - CNSV Email",
			"CB 6:2 - CNSV Website", "CB 6:3 - IEEE GRID", "CB 6:4 - Eventbrite Browsing",
			"CB 6:5 - Meetup", "CB 6:6 - Friend", "CB 6:7 - Other",
		},
		OutputSuffix: "_EZ_BADGE_UPLOAD",
		Placeholder:  " ",
	}
}

// =============================================================================
// PROFILE LOADING
// =============================================================================

// Load reads a profile override file and merges it over the built-in
// profile.
//
// PARAMETERS:
//   - path: The path to a YAML profile file.
//
// RETURNS:
//   - The merged profile.
//   - An error if the file cannot be read or parsed, or the result is
//     invalid.
//
// Only the fields present in the file are overridden; everything else keeps
// its built-in value.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile file: %w", err)
	}

	applyDefaults(&profile)

	if err := validate(&profile); err != nil {
		return Profile{}, fmt.Errorf("invalid profile: %w", err)
	}

	return profile, nil
}

// applyDefaults fills any unset profile fields from the built-in profile.
func applyDefaults(profile *Profile) {
	defaults := Default()

	if len(profile.ExpectedHeaders) == 0 {
		profile.ExpectedHeaders = defaults.ExpectedHeaders
	}
	if len(profile.HeaderRenames) == 0 {
		profile.HeaderRenames = defaults.HeaderRenames
	}
	if len(profile.BooleanFields) == 0 {
		profile.BooleanFields = defaults.BooleanFields
	}
	if len(profile.OutputColumns) == 0 {
		profile.OutputColumns = defaults.OutputColumns
	}
	if profile.OutputSuffix == "" {
		profile.OutputSuffix = defaults.OutputSuffix
	}
	if profile.Placeholder == "" {
		profile.Placeholder = defaults.Placeholder
	}
}

// validate checks profile invariants that the pipeline depends on.
func validate(profile *Profile) error {
	if len(profile.ExpectedHeaders) == 0 {
		return fmt.Errorf("expected_headers must not be empty")
	}
	if len(profile.OutputColumns) == 0 {
		return fmt.Errorf("output_columns must not be empty")
	}

	seen := make(map[string]bool, len(profile.OutputColumns))
	for _, column := range profile.OutputColumns {
		if column == "" {
			return fmt.Errorf("output_columns must not contain empty names")
		}
		if seen[column] {
			return fmt.Errorf("duplicate output column: %s", column)
		}
		seen[column] = true
	}

	for _, field := range profile.BooleanFields {
		if field.Header == "" {
			return fmt.Errorf("boolean_fields entries must name a header")
		}
	}

	return nil
}
