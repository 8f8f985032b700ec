package tensor

import (
	"errors"
	"fmt"
)

// Errors returned by FromNested.
var (
	ErrRagged     = errors.New("ragged nested list")
	ErrNotNumeric = errors.New("non-numeric element")
)

// FromNested builds a float64 tensor from a nested list literal, as produced
// by decoding YAML or JSON into an any: lists are []any and leaves are numbers.
//
// The shape is read from the first element at each depth, and every other
// list must match it. A bare number gives a rank-0 tensor and an empty list
// gives shape [0].
//
// Example:
//
//	var v any
//	_ = yaml.Unmarshal([]byte("[[1, 2], [3, 4]]"), &v)
//	t, err := tensor.FromNested(v, backend) // shape [2, 2]
func FromNested[B Backend](value any, b B) (*Tensor[float64, B], error) {
	shape := nestedShape(value)
	data := make([]float64, 0, shape.NumElements())

	data, err := flattenNested(value, shape, 0, nil, data)
	if err != nil {
		return nil, err
	}
	return FromSlice(data, shape, b)
}

func nestedShape(value any) Shape {
	shape := Shape{}
	for {
		list, ok := value.([]any)
		if !ok {
			return shape
		}
		shape = append(shape, len(list))
		if len(list) == 0 {
			return shape
		}
		value = list[0]
	}
}

func flattenNested(value any, shape Shape, depth int, path []int, out []float64) ([]float64, error) {
	list, isList := value.([]any)

	if depth == len(shape) {
		if isList {
			return nil, fmt.Errorf("%w: unexpected list at index %v", ErrRagged, path)
		}
		v, err := toFloat64(value)
		if err != nil {
			return nil, fmt.Errorf("index %v: %w", path, err)
		}
		return append(out, v), nil
	}

	if !isList {
		return nil, fmt.Errorf("%w: expected list of length %d at index %v, got %T", ErrRagged, shape[depth], path, value)
	}
	if len(list) != shape[depth] {
		return nil, fmt.Errorf("%w: expected length %d at index %v, got %d", ErrRagged, shape[depth], path, len(list))
	}

	var err error
	for i, elem := range list {
		out, err = flattenNested(elem, shape, depth+1, append(path, i), out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func toFloat64(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: %v (%T)", ErrNotNumeric, value, value)
	}
}
