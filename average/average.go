// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package average

import (
	"fmt"

	"github.com/born-ml/average/backend/cpu"
	"github.com/born-ml/average/tensor"
)

// Average returns the arithmetic mean of every element of t, flattened
// across all dimensions.
//
// It returns *EmptyInputError when t is nil or holds no elements. The input
// is never modified.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
//	mean, err := average.Average(x) // 2.5, nil
func Average[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B]) (float64, error) {
	if t == nil {
		return 0, &EmptyInputError{}
	}
	if t.NumElements() == 0 {
		return 0, &EmptyInputError{Shape: t.Shape().Clone()}
	}
	return t.Backend().Mean(t.Raw()), nil
}

// MustAverage is like Average but panics on error.
func MustAverage[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B]) float64 {
	mean, err := Average(t)
	if err != nil {
		panic(err)
	}
	return mean
}

// Of averages data laid out row-major in the given shape on the CPU backend.
// With no shape, data is treated as a vector.
//
// Example:
//
//	mean, err := average.Of([]float64{1, 2, 3, 4}, 2, 2) // 2.5, nil
func Of[T tensor.DType](data []T, shape ...int) (float64, error) {
	s := tensor.Shape(shape)
	if len(shape) == 0 {
		s = tensor.Shape{len(data)}
	}

	t, err := tensor.FromSlice(data, s, cpu.New())
	if err != nil {
		return 0, fmt.Errorf("average: %w", err)
	}
	return Average(t)
}
