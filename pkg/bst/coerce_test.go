package bst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/treekit/pkg/types"
)

type label string

func TestCoerce_Int(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    int
		wantErr bool
	}{
		{"int", 7, 7, false},
		{"int64", int64(-3), -3, false},
		{"integral float", 3.0, 3, false},
		{"uint64", uint64(12), 12, false},
		{"fractional float", 3.5, 0, true},
		{"numeric string", "10", 0, true},
		{"bool", true, 0, true},
		{"nil", nil, 0, true},
		{"huge uint64", uint64(1 << 63), 0, true},
		{"infinity", math.Inf(1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerce[int](tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrTypeMismatch)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCoerce_SmallAndUnsigned(t *testing.T) {
	_, err := coerce[int8](300)
	require.ErrorIs(t, err, types.ErrTypeMismatch)

	_, err = coerce[int8](200)
	require.ErrorIs(t, err, types.ErrTypeMismatch)

	v8, err := coerce[int8](-100)
	require.NoError(t, err)
	require.Equal(t, int8(-100), v8)

	_, err = coerce[uint](-1)
	require.ErrorIs(t, err, types.ErrTypeMismatch)

	u, err := coerce[uint](5)
	require.NoError(t, err)
	require.Equal(t, uint(5), u)
}

func TestCoerce_Float(t *testing.T) {
	f, err := coerce[float64](10)
	require.NoError(t, err)
	require.Equal(t, 10.0, f)

	f, err = coerce[float64](2.25)
	require.NoError(t, err)
	require.Equal(t, 2.25, f)

	_, err = coerce[float64](math.NaN())
	require.ErrorIs(t, err, types.ErrTypeMismatch)

	_, err = coerce[float64]("1.5")
	require.ErrorIs(t, err, types.ErrTypeMismatch)
}

func TestCoerce_String(t *testing.T) {
	s, err := coerce[string]("abc")
	require.NoError(t, err)
	require.Equal(t, "abc", s)

	l, err := coerce[label]("x")
	require.NoError(t, err)
	require.Equal(t, label("x"), l)

	// no silent number-to-text conversion
	_, err = coerce[string](10)
	require.ErrorIs(t, err, types.ErrTypeMismatch)
}
