package csvparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParse(t *testing.T) {
	path := writeTempCSV(t, "First Name,Last Name,Email\nAda,Lovelace,ada@example.com\nGrace,Hopper,grace@example.com\n")

	report, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"First Name", "Last Name", "Email"}, report.Headers)
	assert.Equal(t, 3, report.ColumnCount)
	assert.Equal(t, 2, report.RowCount)
	assert.Equal(t, "Ada", report.Rows[0]["First Name"])
	assert.Equal(t, "grace@example.com", report.Rows[1]["Email"])
	assert.Equal(t, path, report.SourceFile)
}

func TestParsePreservesValuesExactly(t *testing.T) {
	// A lone space and surrounding whitespace are significant downstream.
	path := writeTempCSV(t, "A,B,C\n\" \",\" x \",\"a,b\"\n")

	report, err := Parse(path)
	require.NoError(t, err)

	require.Equal(t, 1, report.RowCount)
	assert.Equal(t, " ", report.Rows[0]["A"])
	assert.Equal(t, " x ", report.Rows[0]["B"])
	assert.Equal(t, "a,b", report.Rows[0]["C"])
}

func TestParseShortRowPadded(t *testing.T) {
	path := writeTempCSV(t, "A,B,C\nonly\n")

	report, err := Parse(path)
	require.NoError(t, err)

	require.Equal(t, 1, report.RowCount)
	assert.Equal(t, "only", report.Rows[0]["A"])
	assert.Equal(t, "", report.Rows[0]["B"])
	assert.Equal(t, "", report.Rows[0]["C"])
}

func TestParseKeepsAllEmptyRows(t *testing.T) {
	// A row of empty cells is still an attendee row and must survive; only
	// truly blank lines (no commas) are dropped, by encoding/csv itself.
	path := writeTempCSV(t, "A,B\n1,2\n,\n3,4\n")

	report, err := Parse(path)
	require.NoError(t, err)

	require.Equal(t, 3, report.RowCount)
	assert.Equal(t, "", report.Rows[1]["A"])
	assert.Equal(t, "", report.Rows[1]["B"])
	assert.Equal(t, "3", report.Rows[2]["A"])
}

func TestParseKeepsLoneSpaceRow(t *testing.T) {
	path := writeTempCSV(t, "A,B\n\" \",\" \"\n")

	report, err := Parse(path)
	require.NoError(t, err)

	require.Equal(t, 1, report.RowCount)
	assert.Equal(t, " ", report.Rows[0]["A"])
	assert.Equal(t, " ", report.Rows[0]["B"])
}

func TestParseSkipsBlankLines(t *testing.T) {
	path := writeTempCSV(t, "A,B\n1,2\n\n3,4\n")

	report, err := Parse(path)
	require.NoError(t, err)

	require.Equal(t, 2, report.RowCount)
	assert.Equal(t, "3", report.Rows[1]["A"])
}

func TestParseEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := Parse(path)
	assert.Error(t, err)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestReadHeader(t *testing.T) {
	path := writeTempCSV(t, "First Name,Last Name\nAda,Lovelace\n")

	headers, err := ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"First Name", "Last Name"}, headers)
}

func TestReadHeaderEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := ReadHeader(path)
	assert.Error(t, err)
}
