// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor reductions.
//
// # Overview
//
// The backend supplies whole-tensor reductions:
//   - Sum: every element, accumulated in float64
//   - Mean: Sum divided by the element count (NaN when empty)
//
// # Basic Usage
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
//	m := backend.Mean(x.Raw()) // 2.5
//
// For an error on empty input use the average package instead of Mean.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. It holds no mutable state.
package cpu
