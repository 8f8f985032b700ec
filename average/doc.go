// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package average computes the arithmetic mean of a tensor.
//
// The mean is taken over all elements, flattened across every dimension,
// and is returned as a float64 whatever the element type. Empty input is
// rejected with *EmptyInputError, which matches ErrInvalidArgument:
//
//	mean, err := average.Of([]float64{})
//	if errors.Is(err, average.ErrInvalidArgument) {
//	    // Cannot compute the average of an empty tensor.
//	}
package average
