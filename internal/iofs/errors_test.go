package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		path string
		text string
	}{
		{"create dir", CreateDirError("/a/b", cause),
			errcode.CreateDirError, "/a/b", "cannot create directory"},
		{"copy file", CopyFileError("/a/config.yaml", cause),
			errcode.CopyFileError, "/a/config.yaml", "cannot copy file"},
		{"read file", ReadFileError("/a/config.yaml", cause),
			errcode.ReadFileError, "/a/config.yaml", "cannot read /a/config.yaml"},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Contains(t, gnErr.Msg, "%s", v.msg)
		require.Len(t, gnErr.Vars, 1, v.msg)
		assert.Equal(t, v.path, gnErr.Vars[0], v.msg)

		assert.ErrorIs(t, gnErr.Err, cause, v.msg)
		assert.Contains(t, gnErr.Err.Error(), v.text, v.msg)
		// caller is recorded by runtime.Caller
		assert.Contains(t, gnErr.Err.Error(), "from ", v.msg)
		assert.Contains(t, gnErr.Err.Error(), "iofs.TestErrors", v.msg)
	}
}
