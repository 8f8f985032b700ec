// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package average

import (
	"errors"

	"github.com/born-ml/average/tensor"
)

// ErrInvalidArgument is the error kind for inputs the average is not defined on.
var ErrInvalidArgument = errors.New("invalid argument")

// EmptyInputError reports an attempt to average a tensor with no elements.
// It matches ErrInvalidArgument under errors.Is.
type EmptyInputError struct {
	Shape tensor.Shape // Shape of the rejected tensor; nil for a nil tensor
}

// Error implements the error interface.
func (e *EmptyInputError) Error() string {
	return "Cannot compute the average of an empty tensor."
}

// Unwrap returns ErrInvalidArgument.
func (e *EmptyInputError) Unwrap() error {
	return ErrInvalidArgument
}
