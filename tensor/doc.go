// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the typed numeric container consumed by the
// average package.
//
// # Overview
//
// A Tensor[T, B] is a rank-arbitrary, row-major array of T bound to a
// backend B that supplies reductions. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Scalars (Shape{}) and empty tensors (any zero dimension)
//   - Construction from flat slices or decoded nested list literals
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/average/backend/cpu"
//	    "github.com/born-ml/average/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(x.At(1, 0)) // 3
//	}
//
// # Supported Data Types
//
// The DType constraint admits float32, float64, int32, int64 and uint8.
// Reductions always accumulate and return float64.
//
// # Nested Literals
//
// FromNested accepts the value produced by decoding YAML or JSON such as
// [[1, 2], [3, 4]] into an any. Ragged lists fail with ErrRagged and
// non-numeric leaves with ErrNotNumeric.
package tensor
