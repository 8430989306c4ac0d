package nexus

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotNumeric is returned by Flatten for values that are not numbers or
// (nested) slices of numbers.
var ErrNotNumeric = errors.New("dataset is not numeric")

// Flatten converts a scalar or an arbitrarily nested slice of numbers into
// a row-major []float64.
//
// Examples:
//   - float32(2) -> []float64{2}
//   - []int16{1, 2} -> []float64{1, 2}
//   - [][]float64{{1, 2}, {3, 4}} -> []float64{1, 2, 3, 4}
func Flatten(v interface{}) ([]float64, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrNotNumeric)
	}
	if fs, ok := v.([]float64); ok {
		return fs, nil
	}
	var out []float64
	if err := flattenValue(reflect.ValueOf(v), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenValue(rv reflect.Value, out *[]float64) error {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := flattenValue(rv.Index(i), out); err != nil {
				return err
			}
		}
		return nil
	case reflect.Float32, reflect.Float64:
		*out = append(*out, rv.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		*out = append(*out, float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		*out = append(*out, float64(rv.Uint()))
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return fmt.Errorf("%w: nil element", ErrNotNumeric)
		}
		return flattenValue(rv.Elem(), out)
	default:
		return fmt.Errorf("%w: %s", ErrNotNumeric, rv.Type())
	}
	return nil
}
