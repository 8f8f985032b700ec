// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/average/internal/tensor"

// Backend defines the reductions a compute backend supplies.
//
// Implementations:
//   - backend/cpu: pure Go
//
// Example:
//
//	import (
//	    "github.com/born-ml/average/backend/cpu"
//	    "github.com/born-ml/average/tensor"
//	)
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, backend)
//	total := backend.Sum(x.Raw()) // 6
type Backend = tensor.Backend
