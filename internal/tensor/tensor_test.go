package tensor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustArange(t *testing.T, start, step float32, shape Shape) *Tensor {
	t.Helper()
	tr, err := Arange(start, step, shape)
	if err != nil {
		t.Fatalf("Arange(%v, %v, %v) failed: %v", start, step, shape, err)
	}
	return tr
}

func TestGetSetRoundTrip(t *testing.T) {
	tr := mustArange(t, 0, 1, Shape{2, 3, 4})
	defer tr.Free()

	values := []float32{-1.5, 0, 3.25, 1e6}
	for _, v := range values {
		if err := tr.Set(v, 1, 2, 3); err != nil {
			t.Fatalf("Set(%v) failed: %v", v, err)
		}
		got, err := tr.Get(1, 2, 3)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != v {
			t.Errorf("Get after Set(%v) = %v", v, got)
		}
	}
}

func TestNegativeIndexing(t *testing.T) {
	tr := mustArange(t, 0, 1, Shape{5})
	defer tr.Free()

	last, err := tr.Get(-1)
	if err != nil {
		t.Fatalf("Get(-1) failed: %v", err)
	}
	want, err := tr.Get(4)
	if err != nil {
		t.Fatalf("Get(4) failed: %v", err)
	}
	if last != want {
		t.Errorf("Get(-1) = %v, want Get(4) = %v", last, want)
	}

	// Multi-axis negative indexing.
	tr2 := mustArange(t, 0, 1, Shape{3, 4})
	defer tr2.Free()

	v, err := tr2.Get(-1, -1)
	if err != nil {
		t.Fatalf("Get(-1, -1) failed: %v", err)
	}
	if v != 11.0 {
		t.Errorf("Get(-1, -1) = %v, want 11", v)
	}
}

func TestRankMismatch(t *testing.T) {
	tr := mustArange(t, 0, 1, Shape{3, 4})
	defer tr.Free()

	_, err := tr.Get(1)
	var rankErr *RankError
	if !errors.As(err, &rankErr) {
		t.Fatalf("Get with 1 index on rank-2 tensor: err = %v, want *RankError", err)
	}
	if rankErr.Got != 1 || rankErr.Want != 2 {
		t.Errorf("RankError = %+v, want Got=1 Want=2", rankErr)
	}

	if err := tr.Set(0, 1, 2, 3); !errors.As(err, &rankErr) {
		t.Errorf("Set with 3 indices on rank-2 tensor: err = %v, want *RankError", err)
	}
}

func TestIndexOutOfBounds(t *testing.T) {
	tr := mustArange(t, 0, 1, Shape{3, 4})
	defer tr.Free()

	tests := []struct {
		indices []int
		axis    int
	}{
		{[]int{3, 0}, 0},
		{[]int{0, 4}, 1},
		{[]int{-4, 0}, 0}, // still negative after one wraparound pass
		{[]int{0, -5}, 1},
	}

	for _, tt := range tests {
		_, err := tr.Get(tt.indices...)
		var idxErr *IndexError
		if !errors.As(err, &idxErr) {
			t.Errorf("Get(%v): err = %v, want *IndexError", tt.indices, err)
			continue
		}
		if idxErr.Axis != tt.axis {
			t.Errorf("Get(%v): IndexError.Axis = %d, want %d", tt.indices, idxErr.Axis, tt.axis)
		}
		if idxErr.Index != tt.indices[tt.axis] {
			t.Errorf("Get(%v): IndexError.Index = %d, want %d", tt.indices, idxErr.Index, tt.indices[tt.axis])
		}
		if idxErr.Size != tr.Shape()[tt.axis] {
			t.Errorf("Get(%v): IndexError.Size = %d, want %d", tt.indices, idxErr.Size, tr.Shape()[tt.axis])
		}
	}
}

func TestReshape(t *testing.T) {
	tr := mustArange(t, 0, 1, Shape{3, 4})
	defer tr.Free()

	r, err := tr.Reshape(Shape{2, 6})
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	defer r.Free()

	if !r.Shape().Equal(Shape{2, 6}) {
		t.Errorf("Shape() = %v, want [2 6]", r.Shape())
	}
	if diff := cmp.Diff([]int{6, 1}, r.Strides()); diff != "" {
		t.Errorf("Strides() mismatch (-want +got):\n%s", diff)
	}

	// Flat order is preserved.
	v, err := r.Get(0, 5)
	if err != nil {
		t.Fatalf("Get(0, 5) failed: %v", err)
	}
	if v != 5.0 {
		t.Errorf("Get(0, 5) = %v, want 5", v)
	}
	v, err = r.Get(1, 0)
	if err != nil {
		t.Fatalf("Get(1, 0) failed: %v", err)
	}
	if v != 6.0 {
		t.Errorf("Get(1, 0) = %v, want 6", v)
	}
}

func TestReshapeSharesStorage(t *testing.T) {
	tr := mustArange(t, 0, 1, Shape{3, 4})
	r, err := tr.Reshape(Shape{12})
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}

	if r.Storage() != tr.Storage() {
		t.Fatal("Reshape copied storage, want shared buffer")
	}
	if rc := tr.Storage().refCount(); rc != 2 {
		t.Errorf("refCount() after reshape = %d, want 2", rc)
	}

	// A write through the source is visible through the view.
	if err := tr.Set(99, 1, 2); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, err := r.Get(6) // flat position 1*4+2
	if err != nil {
		t.Fatalf("Get(6) failed: %v", err)
	}
	if v != 99.0 {
		t.Errorf("aliased Get(6) = %v, want 99", v)
	}

	// Freeing the source must not invalidate the view.
	tr.Free()
	v, err = r.Get(6)
	if err != nil {
		t.Fatalf("Get(6) after source Free failed: %v", err)
	}
	if v != 99.0 {
		t.Errorf("Get(6) after source Free = %v, want 99", v)
	}
	if rc := r.Storage().refCount(); rc != 1 {
		t.Errorf("refCount() after source Free = %d, want 1", rc)
	}

	r.Free()
}

func TestReshapeSizeMismatch(t *testing.T) {
	tr := mustArange(t, 0, 1, Shape{3, 4})
	defer tr.Free()

	_, err := tr.Reshape(Shape{5, 2})
	var reshapeErr *ReshapeError
	if !errors.As(err, &reshapeErr) {
		t.Fatalf("Reshape to [5 2]: err = %v, want *ReshapeError", err)
	}
	if !reshapeErr.Shape.Equal(Shape{5, 2}) {
		t.Errorf("ReshapeError.Shape = %v, want [5 2]", reshapeErr.Shape)
	}
	if reshapeErr.Elements != 10 || reshapeErr.Capacity != 12 {
		t.Errorf("ReshapeError = %+v, want Elements=10 Capacity=12", reshapeErr)
	}

	// Refcount is untouched on a failed reshape.
	if rc := tr.Storage().refCount(); rc != 1 {
		t.Errorf("refCount() after failed reshape = %d, want 1", rc)
	}
}

func TestReshapeInvalidShape(t *testing.T) {
	tr := mustArange(t, 0, 1, Shape{4})
	defer tr.Free()

	if _, err := tr.Reshape(Shape{-2, 2}); err == nil {
		t.Error("Reshape with negative dimension should fail")
	}
}

func TestFreeReleasesStorage(t *testing.T) {
	tr := mustArange(t, 0, 1, Shape{3})
	s := tr.Storage()

	tr.Free()
	if s.Data() != nil {
		t.Error("storage buffer not released by last Free")
	}
	if tr.Shape() != nil || tr.Strides() != nil {
		t.Error("Free did not drop view metadata")
	}
}
