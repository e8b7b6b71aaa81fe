// Package tensor provides the core strided-tensor types: a reference-counted
// flat Storage buffer and the Tensor views that interpret it.
package tensor

// Tensor is a view over a Storage buffer, described by an element offset,
// a shape, and per-dimension strides.
//
// Many Tensors may share one Storage (see Reshape); a write through one
// view is visible through every view of the same buffer region.
type Tensor struct {
	storage *Storage
	offset  int
	shape   Shape
	stride  []int
	repr    string // Memoized String() result, "" until first use
	hasRepr bool
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's memory strides.
func (t *Tensor) Strides() []int {
	return t.stride
}

// Offset returns the element offset of the view's logical origin
// within its storage.
func (t *Tensor) Offset() int {
	return t.offset
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements addressable by this view.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Storage returns the underlying shared buffer.
// Used by low-level consumers; most callers want Get/Set.
func (t *Tensor) Storage() *Storage {
	return t.storage
}

// physicalIndex validates a logical index tuple and translates it to a flat
// storage position. Negative indices get one wraparound pass per axis
// (Python style) before the bounds check.
func (t *Tensor) physicalIndex(indices []int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, &RankError{Got: len(indices), Want: len(t.shape)}
	}

	idx := t.offset
	for i, ix := range indices {
		adjusted := ix
		if adjusted < 0 {
			adjusted += t.shape[i]
		}
		if adjusted < 0 || adjusted >= t.shape[i] {
			return 0, &IndexError{Index: ix, Axis: i, Size: t.shape[i]}
		}
		idx += adjusted * t.stride[i]
	}
	return idx, nil
}

// Get returns the element at the given logical indices.
// The number of indices must equal the tensor's rank; negative indices
// count from the end of their axis.
//
// Example:
//
//	t, _ := Arange(0, 1, Shape{3, 4})
//	v, err := t.Get(1, 2) // 6.0
func (t *Tensor) Get(indices ...int) (float32, error) {
	idx, err := t.physicalIndex(indices)
	if err != nil {
		return 0, err
	}
	return t.storage.Get(idx), nil
}

// Set writes the element at the given logical indices.
// Indexing rules match Get. A successful Set drops any memoized
// string representation.
func (t *Tensor) Set(value float32, indices ...int) error {
	idx, err := t.physicalIndex(indices)
	if err != nil {
		return err
	}
	t.storage.Set(idx, value)
	t.repr = ""
	t.hasRepr = false
	return nil
}

// Reshape returns a new view over the same storage with a different shape.
//
// The new shape's element count must equal the storage capacity (not the
// view's own element count), so reshape is only defined for full, offset-0,
// densely strided views. The new view shares the buffer (no data copy) and
// gets fresh row-major strides.
func (t *Tensor) Reshape(newShape Shape) (*Tensor, error) {
	if err := newShape.Validate(); err != nil {
		return nil, err
	}
	n := newShape.NumElements()
	if n != t.storage.Len() {
		return nil, &ReshapeError{Shape: newShape.Clone(), Elements: n, Capacity: t.storage.Len()}
	}

	t.storage.Incref()
	return &Tensor{
		storage: t.storage,
		offset:  t.offset,
		shape:   newShape.Clone(),
		stride:  newShape.ComputeStrides(),
	}, nil
}

// Free releases this view's reference to its storage and drops its
// metadata. The buffer itself is released when the last view is freed.
//
// Free must be called exactly once per tensor; using the tensor afterward
// is a caller error.
func (t *Tensor) Free() {
	t.storage.Decref()
	t.storage = nil
	t.shape = nil
	t.stride = nil
	t.repr = ""
	t.hasRepr = false
}
