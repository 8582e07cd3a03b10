// =============================================================================
// eb2ez - Main Entry Point
// =============================================================================
//
// eb2ez converts an Eventbrite Attendee Report CSV export into the CSV
// format expected by the EZ Badge upload service.
//
// USAGE:
//   eb2ez <attendee-report.csv>   - Convert a report to the upload format
//   eb2ez check <report.csv>      - Validate a report without writing output
//   eb2ez version                 - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core pipeline (config, parsing, validation, transform,
//                      output formatting, orchestration)
//   - pkg/utils/     : Shared file helpers
//
// =============================================================================

package main

import (
	"github.com/cnsv-tools/eb2ez/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
