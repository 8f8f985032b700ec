package cpu

import (
	"fmt"

	"github.com/born-ml/average/internal/tensor"
)

// Sum adds every element of x, flattened across all dimensions.
//
// Elements are accumulated in float64 in storage order, whatever the dtype.
// An empty tensor sums to 0.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
//	s := backend.Sum(x.Raw()) // 10
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) float64 {
	switch x.DType() {
	case tensor.Float32:
		return sumAs(x.AsFloat32())
	case tensor.Float64:
		return sumAs(x.AsFloat64())
	case tensor.Int32:
		return sumAs(x.AsInt32())
	case tensor.Int64:
		return sumAs(x.AsInt64())
	case tensor.Uint8:
		return sumAs(x.AsUint8())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}
}

// Mean computes the arithmetic mean of every element of x, flattened across
// all dimensions.
//
// An empty tensor yields NaN (0/0). Callers that want an error instead must
// check NumElements first.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{4}, backend)
//	m := backend.Mean(x.Raw()) // 2.5
func (cpu *CPUBackend) Mean(x *tensor.RawTensor) float64 {
	return cpu.Sum(x) / float64(x.NumElements())
}

func sumAs[T tensor.DType](data []T) float64 {
	var sum float64
	for _, v := range data {
		sum += float64(v)
	}
	return sum
}
