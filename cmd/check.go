// =============================================================================
// eb2ez - Check Command
// =============================================================================
//
// This file defines the 'check' command, which runs only the validation
// stage: file existence, .csv extension, and the expected-header check.
// Nothing is written; a report that passes here will not be rejected by the
// full conversion's validation stage.
//
// COMMAND USAGE:
//   eb2ez check <report.csv>
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cnsv-tools/eb2ez/internal/validation"
)

// checkCmd represents the 'check' command.
var checkCmd = &cobra.Command{
	Use:   "check <report.csv>",
	Short: "Validate a report without writing output",
	Long: `The check command validates that a file is a readable Eventbrite Attendee
Report: it must exist, carry a .csv extension, and its header row must
contain every expected Eventbrite column. No output file is written.`,

	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args[0])
	},
}

// init registers the check command with the root command.
func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck validates one report and prints the outcome.
func runCheck(inputPath string) error {
	profile, err := loadProfile()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return errRunFailed
	}

	if err := validation.CheckFile(inputPath); err != nil {
		fmt.Printf("Error: %v\n", err)
		return errRunFailed
	}

	if err := validation.CheckHeaders(inputPath, profile.ExpectedHeaders); err != nil {
		fmt.Printf("Error: %v\n", err)
		return errRunFailed
	}

	fmt.Printf("%s is a valid Eventbrite Attendee Report\n", inputPath)
	return nil
}
