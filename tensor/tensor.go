// Copyright 2025 The Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/strided-ml/strided/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Storage is the reference-counted flat buffer shared by tensor views.
type Storage = tensor.Storage

// Tensor is a view over a Storage defined by shape, strides, and offset.
type Tensor = tensor.Tensor

// Error types

// RankError reports an element access with the wrong number of indices.
type RankError = tensor.RankError

// IndexError reports a logical index outside its axis bound.
type IndexError = tensor.IndexError

// ReshapeError reports a reshape whose element count does not match the
// storage capacity.
type ReshapeError = tensor.ReshapeError

// Creation functions

// Empty creates an uninitialized tensor of the given shape.
//
// Example:
//
//	t, err := tensor.Empty(tensor.Shape{2, 3})
func Empty(shape Shape) (*Tensor, error) {
	return tensor.Empty(shape)
}

// Arange creates a tensor of the given shape whose buffer is filled in
// physical order with start, start+step, start+2*step, ...
//
// Example:
//
//	t, err := tensor.Arange(0, 1, tensor.Shape{3, 4})
func Arange(start, step float32, shape Shape) (*Tensor, error) {
	return tensor.Arange(start, step, shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return tensor.Ones(shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) (*Tensor, error) {
	return tensor.Zeros(shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full(tensor.Shape{3, 3}, 3.14)
func Full(shape Shape, value float32) (*Tensor, error) {
	return tensor.Full(shape, value)
}

// FromSlice creates a tensor of the given shape from a flat slice.
// The slice is copied into the tensor's storage.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	t, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// NewStorage allocates a raw reference-counted buffer with refcount 1.
//
// This is a low-level function. Most users should use creation functions
// like Zeros, Ones, or FromSlice instead.
func NewStorage(size int) *Storage {
	return tensor.NewStorage(size)
}
