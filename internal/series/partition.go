// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package series

// Partition splits t at boundary. previous holds every point up to and
// including the boundary; current holds the boundary and every point after
// it. The boundary point appears in both halves so that the two drawn
// segments meet. A boundary at either end leaves one half with a single
// point.
func Partition(t *Table, boundary Period) (previous, current []Point, err error) {
	i := t.Index(boundary)
	if i < 0 {
		return nil, nil, &BoundaryNotFoundError{Period: boundary}
	}

	previous = make([]Point, i+1)
	copy(previous, t.points[:i+1])

	current = make([]Point, len(t.points)-i)
	copy(current, t.points[i:])

	return previous, current, nil
}
