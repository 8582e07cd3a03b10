package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "report.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a,b\n"), 0644))

	upperPath := filepath.Join(dir, "REPORT.CSV")
	require.NoError(t, os.WriteFile(upperPath, []byte("a,b\n"), 0644))

	txtPath := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("a,b\n"), 0644))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name: "valid csv file",
			path: csvPath,
		},
		{
			name: "extension check is case-insensitive",
			path: upperPath,
		},
		{
			name:    "missing file",
			path:    filepath.Join(dir, "missing.csv"),
			wantErr: &NotFoundError{},
		},
		{
			name:    "wrong extension",
			path:    txtPath,
			wantErr: &ExtensionError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFile(tt.path)

			switch want := tt.wantErr.(type) {
			case nil:
				assert.NoError(t, err)
			case *NotFoundError:
				assert.ErrorAs(t, err, &want)
			case *ExtensionError:
				assert.ErrorAs(t, err, &want)
			}
		})
	}
}

func TestCheckHeaders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("First Name,Last Name,Email,Extra Column\nAda,Lovelace,ada@example.com,x\n"), 0644))

	t.Run("all expected headers present", func(t *testing.T) {
		err := CheckHeaders(path, []string{"First Name", "Email"})
		assert.NoError(t, err)
	})

	t.Run("extra headers are allowed", func(t *testing.T) {
		err := CheckHeaders(path, []string{"First Name", "Last Name", "Email"})
		assert.NoError(t, err)
	})

	t.Run("missing header is reported", func(t *testing.T) {
		err := CheckHeaders(path, []string{"First Name", "Company"})

		var headerErr *HeaderError
		require.ErrorAs(t, err, &headerErr)
		assert.Equal(t, []string{"Company"}, headerErr.Missing)
		assert.Contains(t, headerErr.Error(), "is not an Eventbrite Attendee Report")
	})

	t.Run("unreadable file is a read error", func(t *testing.T) {
		err := CheckHeaders(filepath.Join(dir, "missing.csv"), []string{"Email"})

		var readErr *ReadError
		assert.ErrorAs(t, err, &readErr)
	})
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "in.csv does not exist", (&NotFoundError{Path: "in.csv"}).Error())
	assert.Equal(t, "in.txt is not a CSV file", (&ExtensionError{Path: "in.txt"}).Error())
}
