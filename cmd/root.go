// =============================================================================
// eb2ez - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command
// itself runs the conversion when given exactly one input file; anything
// else prints the usage text and leaves the filesystem untouched.
//
// COBRA CLI STRUCTURE:
//   rootCmd (eb2ez <attendee-report.csv>)
//   ├── checkCmd (eb2ez check <report.csv>)
//   └── versionCmd (eb2ez version)
//
// EXIT BEHAVIOR:
//   Every failure path prints a single diagnostic line to standard output
//   and the process exits non-zero. The usage paths (no arguments, --help,
//   too many arguments) exit zero without touching the filesystem.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cnsv-tools/eb2ez/internal/config"
	"github.com/cnsv-tools/eb2ez/internal/converter"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// profileFile holds the path to an optional profile override file.
// Set with the --config flag; empty means the built-in profile.
var profileFile string

// verbose enables debug logging when set to true.
var verbose bool

// errRunFailed signals a failure whose diagnostic has already been printed.
// It makes the process exit non-zero without a second error message.
var errRunFailed = errors.New("run failed")

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command. Unlike a multi-tool CLI, the root
// command does the work itself: it takes the attendee report as its only
// argument and runs the full conversion.
var rootCmd = &cobra.Command{
	Use:   "eb2ez <attendee-report.csv>",
	Short: "Convert an Eventbrite Attendee Report to the EZ Badge upload format",
	Long: `eb2ez converts an Eventbrite Attendee Report CSV export into the CSV
format expected by the EZ Badge upload service.

The conversion validates the report (file present, .csv extension, all
expected Eventbrite columns in the header), rewrites the yes/no question
answers into badge labels, renames columns, and writes the 15-column upload
file next to the input:

  attendees.csv  ->  attendees_EZ_BADGE_UPLOAD.csv

The output file is written atomically: a failed run never leaves a partial
upload file behind.

Example Usage:
  eb2ez attendees.csv                  # Convert a report
  eb2ez check attendees.csv            # Validate without writing output
  eb2ez --config profile.yaml in.csv   # Use a custom report profile`,

	// Exactly one argument runs the conversion; anything else is a usage
	// request and must not touch the filesystem.
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cmd.Help()
		}
		return runConvert(args[0])
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Diagnostics for run failures are already printed; anything else
		// (flag errors, unknown subcommands) still needs a message.
		if !errors.Is(err, errRunFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the persistent flags shared by all commands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&profileFile,
		"config",
		"",
		"Path to a report profile override file (default is the built-in profile)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// CONVERSION ENTRY POINT
// =============================================================================

// runConvert runs the full pipeline on one report and prints the outcome.
func runConvert(inputPath string) error {
	profile, err := loadProfile()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return errRunFailed
	}

	conv := converter.New(inputPath, profile, newLogger())
	result := conv.Run()

	if result.Err != nil {
		fmt.Printf("Error: %v\n", result.Err)
		fmt.Println("Processing failed!")
		return errRunFailed
	}

	fmt.Printf("Output file generated: %s\n", result.OutputFile)
	fmt.Println("Processing completed successfully!")
	return nil
}

// loadProfile returns the report profile: the built-in one, or the merged
// override when --config is set.
func loadProfile() (config.Profile, error) {
	if profileFile == "" {
		return config.Default(), nil
	}
	return config.Load(profileFile)
}

// newLogger builds the debug logger. Without --verbose all debug output is
// discarded; diagnostics for the user go to stdout separately.
func newLogger() *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
