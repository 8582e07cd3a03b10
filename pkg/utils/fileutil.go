// =============================================================================
// eb2ez - File Utilities
// =============================================================================
//
// Shared file helpers used by validation and the output writer.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// HasExtension checks if a path ends with the given extension,
// case-insensitively. The extension should include the leading dot.
func HasExtension(path, ext string) bool {
	return strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext))
}

// AtomicWriteFile writes data to a file such that the destination either
// receives the complete contents or is not created at all.
//
// The data is written to a uniquely named temporary file in the same
// directory and renamed into place, so a failure mid-write never leaves a
// partial file at the destination.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmpPath := fmt.Sprintf("%s.tmp-%s", path, uuid.NewString())

	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		// Best effort: an aborted write may leave the temp file behind.
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
