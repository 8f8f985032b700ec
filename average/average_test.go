// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package average_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/born-ml/average/average"
	"github.com/born-ml/average/backend/cpu"
	"github.com/born-ml/average/tensor"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAverage(t *testing.T) {
	x, err := tensor.FromSlice([]float32{1.0, 2.0, 3.0, 4.0}, tensor.Shape{4}, cpu.New())
	require.NoError(t, err)

	result, err := average.Average(x)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, result, 1e-6)
}

func TestAverage_EmptyTensor(t *testing.T) {
	x := tensor.Empty[float32](cpu.New())

	_, err := average.Average(x)
	require.Error(t, err)
	assert.ErrorIs(t, err, average.ErrInvalidArgument)
	assert.EqualError(t, err, "Cannot compute the average of an empty tensor.")

	var emptyErr *average.EmptyInputError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, tensor.Shape{0}, emptyErr.Shape)
}

func TestAverage_MultidimensionalTensor(t *testing.T) {
	x, err := tensor.FromSlice([]float32{1.0, 2.0, 3.0, 4.0}, tensor.Shape{2, 2}, cpu.New())
	require.NoError(t, err)

	result, err := average.Average(x)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, result, 1e-6)
}

func TestAverage_EmptyShapes(t *testing.T) {
	backend := cpu.New()

	for _, shape := range []tensor.Shape{{0}, {0, 3}, {2, 0}, {2, 3, 0}} {
		x := tensor.Zeros[float64](shape, backend)
		_, err := average.Average(x)
		assert.ErrorIs(t, err, average.ErrInvalidArgument, "shape %v", shape)
	}
}

func TestAverage_NilTensor(t *testing.T) {
	var x *tensor.Tensor[float64, *cpu.Backend]

	_, err := average.Average(x)
	var emptyErr *average.EmptyInputError
	require.ErrorAs(t, err, &emptyErr)
	assert.Nil(t, emptyErr.Shape)
}

func TestAverage_Scalar(t *testing.T) {
	x, err := tensor.FromSlice([]float64{-7.25}, tensor.Shape{}, cpu.New())
	require.NoError(t, err)

	result, err := average.Average(x)
	require.NoError(t, err)
	assert.Equal(t, -7.25, result)
}

func TestAverage_IntegerTensors(t *testing.T) {
	backend := cpu.New()

	i32, err := tensor.FromSlice([]int32{1, 2}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	result, err := average.Average(i32)
	require.NoError(t, err)
	assert.Equal(t, 1.5, result, "integer input must not truncate")

	u8, err := tensor.FromSlice([]uint8{255, 255, 0, 0}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	result, err = average.Average(u8)
	require.NoError(t, err)
	assert.Equal(t, 127.5, result)
}

type celsius float64

func TestAverage_NamedElementType(t *testing.T) {
	result, err := average.Of([]celsius{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, result)

	x, err := tensor.FromSlice([]celsius{1, 2, 3, 4}, tensor.Shape{2, 2}, cpu.New())
	require.NoError(t, err)
	assert.Equal(t, tensor.Float64, x.DType())
	assert.Equal(t, 2.5, average.MustAverage(x))

	_, err = average.Of([]celsius{})
	assert.ErrorIs(t, err, average.ErrInvalidArgument)
}

func TestAverage_EqualsSumOverCount(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(42))

	for _, shape := range []tensor.Shape{{1}, {7}, {3, 5}, {2, 3, 4}, {4, 1, 2, 3}} {
		data := make([]float64, shape.NumElements())
		for i := range data {
			data[i] = rng.Float64()*200 - 100
		}
		x, err := tensor.FromSlice(data, shape, backend)
		require.NoError(t, err)

		var sum float64
		for _, v := range data {
			sum += v
		}

		result, err := average.Average(x)
		require.NoError(t, err)
		assert.InDelta(t, sum/float64(len(data)), result, 1e-9, "shape %v", shape)
	}
}

func TestAverage_Idempotent(t *testing.T) {
	data := []float64{3, 1, 4, 1, 5, 9}
	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, cpu.New())
	require.NoError(t, err)

	first, err := average.Average(x)
	require.NoError(t, err)
	second, err := average.Average(x)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []float64{3, 1, 4, 1, 5, 9}, x.Data(), "input must not be mutated")
}

func TestAverage_OrderIndependent(t *testing.T) {
	backend := cpu.New()
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	x, err := tensor.FromSlice(data, tensor.Shape{2, 4}, backend)
	require.NoError(t, err)
	want, err := average.Average(x)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		perm := append([]float64(nil), data...)
		rng.Shuffle(len(perm), func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })

		y, err := tensor.FromSlice(perm, tensor.Shape{4, 2}, backend)
		require.NoError(t, err)
		got, err := average.Average(y)
		require.NoError(t, err)
		assert.Equal(t, want, got, "permutation %v", perm)
	}
}

func TestMustAverage(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{2, 4}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	assert.Equal(t, 3.0, average.MustAverage(x))

	assert.Panics(t, func() {
		average.MustAverage(tensor.Empty[float64](backend))
	})
}

func TestOf(t *testing.T) {
	result, err := average.Of([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, result)

	result, err = average.Of([]float32{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.5, result)

	_, err = average.Of([]float64{})
	assert.ErrorIs(t, err, average.ErrInvalidArgument)

	_, err = average.Of([]float64{1, 2, 3}, 2, 2)
	require.Error(t, err)
	assert.False(t, errors.Is(err, average.ErrInvalidArgument), "shape mismatch is not an empty input")
}
