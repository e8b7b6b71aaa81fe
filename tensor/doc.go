// Copyright 2025 The Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a minimal strided tensor: a reference-counted
// flat float32 buffer (Storage) interpreted by one or more n-dimensional
// views (Tensor) via shape, stride, and offset metadata.
//
// # Basic Usage
//
//	import "github.com/strided-ml/strided/tensor"
//
//	func main() {
//	    t, _ := tensor.Arange(0, 1, tensor.Shape{3, 4})
//	    defer t.Free()
//
//	    v, _ := t.Get(1, 2)          // 6.0
//	    r, _ := t.Reshape(tensor.Shape{2, 6})
//	    defer r.Free()
//	    fmt.Println(r)               // [[0.00, ..., 5.00], [6.00, ..., 11.00]]
//	}
//
// # Memory Management
//
// Every constructor allocates a fresh Storage with reference count 1.
// Reshape shares the source's Storage (zero copy, refcount incremented);
// the buffer is released when the last view calls Free. Free must be
// called exactly once per tensor.
//
// # Layout
//
// Constructors produce row-major (C order) strides: the last dimension is
// contiguous and each preceding stride is the product of all following
// dimension sizes. Element access maps a logical index tuple to a flat
// position via offset + sum(index*stride), with one Python-style negative
// wraparound pass per axis.
//
// # Errors
//
// Bad index counts, out-of-range indices, and incompatible reshapes are
// returned as typed errors (RankError, IndexError, ReshapeError) carrying
// the exact diagnostic: the offending index and axis bound, or the
// requested shape and actual capacity.
//
// # Concurrency
//
// Reference counts are atomic, so views may be created and freed from
// different goroutines. Element data carries no locking: mutating a
// shared buffer is single-threaded-only unless callers synchronize.
package tensor
