package tensor

import (
	"fmt"
	"strings"
)

// String returns a nested bracketed representation of the tensor,
// dimensions outermost to innermost, each scalar formatted with two
// decimal digits and elements separated by ", ".
//
// Example (shape [2, 3]):
//
//	[[0.00, 1.00, 2.00], [3.00, 4.00, 5.00]]
//
// The result is memoized on first use; Set drops the memo so a later
// String reflects the mutation.
func (t *Tensor) String() string {
	if t.hasRepr {
		return t.repr
	}

	var sb strings.Builder
	indices := make([]int, len(t.shape))
	t.fillString(&sb, indices, 0)

	t.repr = sb.String()
	t.hasRepr = true
	return t.repr
}

// fillString walks the logical index space depth first, emitting one
// bracket pair per dimension.
func (t *Tensor) fillString(sb *strings.Builder, indices []int, dim int) {
	if dim == len(t.shape) {
		// Innermost: the walk only generates in-range indices.
		idx, _ := t.physicalIndex(indices)
		fmt.Fprintf(sb, "%.2f", t.storage.Get(idx))
		return
	}

	sb.WriteByte('[')
	for i := 0; i < t.shape[dim]; i++ {
		indices[dim] = i
		t.fillString(sb, indices, dim+1)
		if i < t.shape[dim]-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteByte(']')
}
