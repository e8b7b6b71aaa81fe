package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Storage is a reference-counted flat buffer of float32 values.
// Multiple Tensors may share one Storage; the buffer is released
// when the last reference is dropped.
//
// The reference count is atomic, so Incref/Decref are safe across
// goroutines. Element access is not synchronized.
type Storage struct {
	data []float32
	refs atomic.Int32
	mu   sync.Mutex // For safe deallocation
}

// NewStorage allocates a buffer of size float32 elements with refcount = 1.
// A zero size is permitted and produces an empty buffer.
func NewStorage(size int) *Storage {
	s := &Storage{
		data: make([]float32, size),
	}
	s.refs.Store(1)
	return s
}

// Len returns the buffer capacity in elements.
func (s *Storage) Len() int {
	return len(s.data)
}

// Get returns the element at flat index idx.
// An out-of-range idx is an internal invariant violation and panics:
// tensor-level bounds checks must reject bad indices before they reach here.
func (s *Storage) Get(idx int) float32 {
	if idx < 0 || idx >= len(s.data) {
		panic(fmt.Sprintf("storage: physical index %d out of range [0, %d)", idx, len(s.data)))
	}
	return s.data[idx]
}

// Set writes the element at flat index idx.
// Panics on an out-of-range idx, like Get.
func (s *Storage) Set(idx int, val float32) {
	if idx < 0 || idx >= len(s.data) {
		panic(fmt.Sprintf("storage: physical index %d out of range [0, %d)", idx, len(s.data)))
	}
	s.data[idx] = val
}

// Data returns the underlying buffer.
// WARNING: Direct access to shared memory. Use with caution.
func (s *Storage) Data() []float32 {
	return s.data
}

// Incref increments the reference count (a new Tensor shares this buffer).
func (s *Storage) Incref() {
	s.refs.Add(1)
}

// Decref decrements the reference count and releases the buffer if it
// reaches 0. The caller must not use the Storage after its own Decref.
func (s *Storage) Decref() {
	if s.refs.Add(-1) == 0 {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.data = nil
	}
}

// refCount reports the current reference count. Test hook.
func (s *Storage) refCount() int32 {
	return s.refs.Load()
}
