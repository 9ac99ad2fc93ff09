package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/squadcheck/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectionError_Structure verifies error structure.
func TestConnectionError_Structure(t *testing.T) {
	target := "test_user@localhost:5432/football"
	originalErr := errors.New("connection refused")

	err := ConnectionError(target, originalErr)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	require.Len(t, gnErr.Vars, 1)
	assert.Equal(t, target, gnErr.Vars[0])
	assert.ErrorIs(t, gnErr.Err, originalErr)
	assert.Contains(t, gnErr.Err.Error(), "TestConnectionError_Structure",
		"Err should name the calling function")
}

func TestErrorCodes(t *testing.T) {
	orig := errors.New("boom")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		wrap bool
	}{
		{"not connected", NotConnectedError(), errcode.DBNotConnectedError, false},
		{"driver", UnknownDriverError("mysql"), errcode.DBUnknownDriverError, false},
		{"close", CloseError(orig), errcode.DBCloseError, true},
		{"released", CursorReleasedError(), errcode.DBCursorReleasedError, false},
		{"release", CursorReleaseError(orig), errcode.DBCursorReleaseError, true},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			if tt.wrap {
				assert.ErrorIs(t, gnErr.Err, orig)
			}
		})
	}
}
