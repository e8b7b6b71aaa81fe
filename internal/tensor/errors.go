package tensor

import "fmt"

// RankError reports an element access with the wrong number of indices.
type RankError struct {
	Got  int // number of indices supplied
	Want int // rank of the tensor
}

func (e *RankError) Error() string {
	return fmt.Sprintf("tensor: got %d indices for a rank-%d tensor", e.Got, e.Want)
}

// IndexError reports a logical index outside its axis bound, after
// negative-index adjustment.
type IndexError struct {
	Index int // the offending index as supplied by the caller
	Axis  int // which dimension it was applied to
	Size  int // the size of that dimension
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("tensor: index %d out of bounds for axis %d with size %d", e.Index, e.Axis, e.Size)
}

// ReshapeError reports a reshape whose element count does not match the
// underlying storage capacity.
type ReshapeError struct {
	Shape    Shape // the requested shape
	Elements int   // its element count
	Capacity int   // the storage capacity it must equal
}

func (e *ReshapeError) Error() string {
	return fmt.Sprintf("tensor: cannot reshape storage of %d elements to shape %v (%d elements)",
		e.Capacity, e.Shape, e.Elements)
}
