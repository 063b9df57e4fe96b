package canaries

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFolder(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.NoError(t, ValidateFolder(dir))

	missing := filepath.Join(dir, "missing")
	err := ValidateFolder(missing)
	assert.ErrorIs(t, err, ErrInvalidFolder)
	assert.EqualError(t, err, missing+": not an existing directory")
	assert.True(t, IsInputError(err))
	assert.Equal(t, ExitBadFolder, ExitCode(err))

	err = ValidateFolder(file)
	assert.ErrorIs(t, err, ErrInvalidFolder)
	assert.EqualError(t, err, file+": not an existing directory")
}

func TestValidateFolders_StopsAtFirstBadPath(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "nope")

	err := ValidateFolders([]string{dir, bad, filepath.Join(dir, "also-nope")})
	require.Error(t, err)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, bad, inputErr.Path)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitBadContents, ExitCode(&InputError{Path: "x", Err: ErrNoSignatures}))
	assert.Equal(t, ExitBadContents, ExitCode(&InputError{Path: "x", Err: ErrMissingMessage}))
	assert.Equal(t, ExitBadContents, ExitCode(&InputError{Path: "x", Err: ErrTooManySignatures}))
	assert.Equal(t, ExitFailure, ExitCode(os.ErrPermission))
	assert.False(t, IsInputError(os.ErrPermission))
}
