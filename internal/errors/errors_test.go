package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "foreign error", err: stderrors.New("boom"), want: CodeInternalError},
		{name: "app error", err: ColumnNotFound("x"), want: CodeColumnNotFound},
		{name: "wrapped app error", err: Wrap(InvalidValue("bad"), "context"), want: CodeInvalidValue},
		{name: "decorated app error", err: AppendLines(NotFound("missing", nil), "more"), want: CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "/data.csv", Err: fs.ErrPermission}
	err := Wrapf(ReadFailure("/data.csv", cause), "loading %s", "courses")

	assert.Equal(t, "loading courses: failed to read /data.csv: open /data.csv: permission denied", err.Error())
	assert.True(t, HasCode(err, CodeReadFailure))
	assert.True(t, stderrors.Is(err, fs.ErrPermission))

	var pathErr *fs.PathError
	require.True(t, stderrors.As(err, &pathErr))
	assert.Equal(t, "/data.csv", pathErr.Path)
}

func TestDecoratePreservesKind(t *testing.T) {
	cause := stderrors.New("Read error")
	err := AppendLines(ReadFailure("/x.csv", cause), "Operating system: linux", "Attempted path: /x.csv")

	assert.Equal(t, "failed to read /x.csv: Read error\nOperating system: linux\nAttempted path: /x.csv", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeReadFailure, GetCode(err))

	var decorated *DecoratedError
	require.ErrorAs(t, err, &decorated)
	assert.Same(t, cause, stderrors.Unwrap(decorated.Cause))
}

func TestDecorateNil(t *testing.T) {
	assert.NoError(t, Decorate(nil, func(s string) string { return s + "!" }))
	assert.NoError(t, Wrap(nil, "context"))
	assert.NoError(t, WithCode(CodeConfigInvalid, nil))

	err := stderrors.New("plain")
	assert.Same(t, err, Decorate(err, nil))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeConfigInvalid, stderrors.New("bad env"))
	assert.Equal(t, CodeConfigInvalid, GetCode(err))
	assert.Equal(t, "bad env", err.Error())
	assert.True(t, IsAppError(err))
	assert.False(t, IsAppError(stderrors.New("plain")))
}
