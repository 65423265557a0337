package bst

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/joshuapare/treekit/pkg/types"
)

// coerce converts a decoded scalar to T. Numeric kinds convert into each
// other only when the conversion is lossless; strings convert only into
// string kinds. Everything else, including NaN, is a type mismatch.
func coerce[T cmp.Ordered](raw any) (T, error) {
	var zero T

	if v, ok := raw.(T); ok {
		// NaN is the only value not equal to itself
		if v != v {
			return zero, fmt.Errorf("%w: NaN has no ordering", types.ErrTypeMismatch)
		}
		return v, nil
	}
	if raw == nil {
		return zero, fmt.Errorf("%w: null cannot be stored as %T", types.ErrTypeMismatch, zero)
	}

	target := reflect.TypeOf(zero)
	src := reflect.ValueOf(raw)

	switch {
	case isNumeric(src.Kind()) && isNumeric(target.Kind()):
		conv := src.Convert(target)
		if sign(conv) != sign(src) || conv.Convert(src.Type()).Interface() != raw {
			return zero, fmt.Errorf("%w: %v does not fit in %T", types.ErrTypeMismatch, raw, zero)
		}
		return conv.Interface().(T), nil

	case src.Kind() == reflect.String && target.Kind() == reflect.String:
		return src.Convert(target).Interface().(T), nil
	}

	return zero, fmt.Errorf("%w: cannot store %T as %T", types.ErrTypeMismatch, raw, zero)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func sign(v reflect.Value) int {
	switch {
	case v.CanInt():
		return cmp.Compare(v.Int(), 0)
	case v.CanUint():
		return cmp.Compare(v.Uint(), 0)
	case v.CanFloat():
		return cmp.Compare(v.Float(), 0)
	}
	return 0
}
