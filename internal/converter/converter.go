// =============================================================================
// eb2ez - Conversion Orchestrator
// =============================================================================
//
// This module wires the pipeline into a single pass:
//
//   Idle -> Validating -> Processing -> Done | Failed
//
// TRANSITIONS:
//   Idle -> Validating        : Run() is called with the input path
//   Validating -> Failed      : file missing, wrong extension, or header
//                               check fails; one diagnostic, no output file
//   Validating -> Processing  : all checks pass
//   Processing -> Done        : parse, transform, and atomic write succeed
//   Processing -> Failed      : any read/parse/write error; the output path
//                               is never left with a partial file
//
// The run is synchronous and single-threaded; the whole report is read into
// memory, transformed, and written in one atomic step.
//
// =============================================================================

package converter

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cnsv-tools/eb2ez/internal/badge"
	"github.com/cnsv-tools/eb2ez/internal/config"
	"github.com/cnsv-tools/eb2ez/internal/csvparser"
	"github.com/cnsv-tools/eb2ez/internal/validation"
)

// =============================================================================
// STATES
// =============================================================================

// State identifies where a conversion run is in its lifecycle.
type State int

const (
	// StateIdle is the initial state before Run is called.
	StateIdle State = iota

	// StateValidating covers the existence, extension, and header checks.
	StateValidating

	// StateProcessing covers parsing, transforming, and writing.
	StateProcessing

	// StateDone means the output file was fully written.
	StateDone

	// StateFailed means the run stopped; no partial output file exists.
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateProcessing:
		return "processing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// =============================================================================
// RESULT
// =============================================================================

// Result describes the outcome of a conversion run.
type Result struct {
	// State is the terminal state of the run (StateDone or StateFailed).
	State State

	// InputFile is the path to the source report.
	InputFile string

	// OutputFile is the path to the generated upload file.
	// Empty when the run failed before the output path was derived.
	OutputFile string

	// RowCount is the number of attendee rows written.
	RowCount int

	// Err is the failure, nil on success. It is one of the typed errors
	// from the validation package, so callers can distinguish failure
	// modes with errors.As.
	Err error
}

// =============================================================================
// CONVERTER
// =============================================================================

// Converter runs the conversion pipeline on one attendee report.
type Converter struct {
	inputPath string
	profile   config.Profile
	logger    *slog.Logger
	runID     string
	state     State
}

// New creates a Converter for the given input file.
// A nil logger disables debug logging.
func New(inputPath string, profile config.Profile, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Converter{
		inputPath: inputPath,
		profile:   profile,
		logger:    logger,
		runID:     uuid.NewString(),
		state:     StateIdle,
	}
}

// State returns the converter's current state.
func (c *Converter) State() State {
	return c.state
}

// Run executes the pipeline and returns the outcome.
//
// Exactly one pass: validate the input, parse all rows, transform them, and
// write the upload file atomically. Any failure halts the run; no partial
// output file remains on any failure path.
func (c *Converter) Run() Result {
	logger := c.logger.With(
		slog.String("run_id", c.runID),
		slog.String("input_file", c.inputPath),
	)

	// =========================================================================
	// VALIDATING
	// =========================================================================

	c.state = StateValidating
	logger.Debug("validating input file")

	if err := validation.CheckFile(c.inputPath); err != nil {
		return c.fail(logger, err)
	}

	if err := validation.CheckHeaders(c.inputPath, c.profile.ExpectedHeaders); err != nil {
		return c.fail(logger, err)
	}

	// =========================================================================
	// PROCESSING
	// =========================================================================

	c.state = StateProcessing
	logger.Debug("parsing report")

	report, err := csvparser.Parse(c.inputPath)
	if err != nil {
		return c.fail(logger, &validation.ReadError{Path: c.inputPath, Err: err})
	}

	logger.Debug("transforming rows", slog.Int("row_count", report.RowCount))

	rows := badge.TransformRows(report, c.profile)
	document := badge.Render(c.profile.OutputColumns, rows, c.profile.Placeholder)
	outputPath := badge.DeriveOutputPath(c.inputPath, c.profile.OutputSuffix)

	logger.Debug("writing upload file", slog.String("output_file", outputPath))

	if err := badge.WriteFile(outputPath, document); err != nil {
		return c.fail(logger, err)
	}

	c.state = StateDone
	logger.Debug("conversion complete",
		slog.String("output_file", outputPath),
		slog.Int("row_count", len(rows)),
	)

	return Result{
		State:      StateDone,
		InputFile:  c.inputPath,
		OutputFile: outputPath,
		RowCount:   len(rows),
	}
}

// fail records the terminal failed state and builds the failure result.
func (c *Converter) fail(logger *slog.Logger, err error) Result {
	c.state = StateFailed
	logger.Debug("conversion failed", slog.String("error", err.Error()))

	return Result{
		State:     StateFailed,
		InputFile: c.inputPath,
		Err:       err,
	}
}
