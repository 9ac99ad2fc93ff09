package iofs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/squadcheck/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Structure verifies error structure.
func TestErrors_Structure(t *testing.T) {
	orig := errors.New("permission denied")
	tests := []struct {
		msg     string
		err     error
		code    gn.ErrorCode
		path    string
		errText string
	}{
		{"create dir", CreateDirError("/test/dir", orig),
			errcode.CreateDirError, "/test/dir", "cannot create directory"},
		{"copy file", CopyFileError("/test/config.yaml", orig),
			errcode.CopyFileError, "/test/config.yaml", "cannot write file"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")

			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, "%s",
				"Message should contain format placeholder")
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, tt.path, gnErr.Vars[0])

			assert.ErrorIs(t, gnErr.Err, orig, "Should wrap original error")
			assert.Contains(t, gnErr.Err.Error(), tt.errText)
			assert.Contains(t, gnErr.Err.Error(), "TestErrors_Structure",
				"Error should name the caller")
		})
	}
}

// TestEnsureConfigFile_Error verifies that a missing config directory
// is reported.
func TestEnsureConfigFile_Error(t *testing.T) {
	tmpDir := t.TempDir()
	// a file where the config directory should be
	blocker := filepath.Join(tmpDir, ".config")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := EnsureConfigFile(tmpDir)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CopyFileError, gnErr.Code)

	err = EnsureDirs(tmpDir)
	require.Error(t, err)
	gnErr, ok = err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateDirError, gnErr.Code)
}
