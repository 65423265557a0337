package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrKind_String(t *testing.T) {
	tests := []struct {
		kind     ErrKind
		expected string
	}{
		{ErrKindSyntax, "syntax"},
		{ErrKindRange, "range"},
		{ErrKindFormat, "format"},
		{ErrKindNotFound, "not-found"},
		{ErrKindType, "type"},
		{ErrKindState, "state"},
		{ErrKind(42), "UNKNOWN_KIND_42"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestError_WrapAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Kind: ErrKindFormat, Msg: "decode", Err: cause}

	require.Equal(t, "decode: boom", err.Error())
	require.ErrorIs(t, err, cause)

	var nilErr *Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("resolve %q: %w", "0/x", ErrInvalidPath)

	require.ErrorIs(t, wrapped, ErrInvalidPath)
	require.NotErrorIs(t, wrapped, ErrIndexOutOfRange)
	require.True(t, IsKind(wrapped, ErrKindSyntax))
	require.False(t, IsKind(wrapped, ErrKindRange))
}

func TestErrorf(t *testing.T) {
	err := Errorf(ErrKindType, ErrTypeMismatch, "cannot store %T", "x")

	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, ErrKindType, kind)
	require.ErrorIs(t, err, ErrTypeMismatch)
	require.Contains(t, err.Error(), "cannot store string")
}

func TestKindOf_PlainError(t *testing.T) {
	_, ok := KindOf(errors.New("plain"))
	require.False(t, ok)
	require.False(t, IsKind(nil, ErrKindSyntax))
}
