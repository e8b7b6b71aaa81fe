package tensor

import "fmt"

// Empty creates an uninitialized tensor of the given shape.
//
// A fresh Storage of product(shape) elements is allocated (refcount 1),
// offset is 0, and strides are row-major. In Go the buffer arrives
// zero-initialized; callers must not rely on that for Empty.
func Empty(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &Tensor{
		storage: NewStorage(shape.NumElements()),
		offset:  0,
		shape:   shape.Clone(),
		stride:  shape.ComputeStrides(),
	}, nil
}

// Arange creates a tensor of the given shape whose storage is filled in
// physical order with start, start+step, start+2*step, ...
//
// For a fresh dense tensor this coincides with logical row-major order.
//
// Example:
//
//	t, _ := Arange(0, 1, Shape{3, 4}) // [[0, 1, 2, 3], [4, 5, 6, 7], ...]
func Arange(start, step float32, shape Shape) (*Tensor, error) {
	t, err := Empty(shape)
	if err != nil {
		return nil, err
	}

	val := start
	for i := 0; i < t.storage.Len(); i++ {
		t.storage.Set(i, val)
		val += step
	}
	return t, nil
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) (*Tensor, error) {
	// Empty's buffer is already zero-initialized by make()
	return Empty(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float32) (*Tensor, error) {
	t, err := Empty(shape)
	if err != nil {
		return nil, err
	}

	data := t.storage.Data()
	for i := range data {
		data[i] = value
	}
	return t, nil
}

// FromSlice creates a tensor of the given shape from a flat slice.
// The slice is copied into the tensor's storage in physical order.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	t, err := Empty(shape)
	if err != nil {
		return nil, err
	}
	copy(t.storage.Data(), data)
	return t, nil
}
