// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package series

import "math"

// Direction describes the sign of a period-over-period change.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// FlatThreshold is the absolute change, in percentage points, below which a
// movement is reported as flat. Estimates are published to one decimal.
const FlatThreshold = 0.05

// Change compares two consecutive points.
type Change struct {
	From      Period
	To        Period
	Delta     float64
	Direction Direction
	// Overlap is true when the two confidence intervals intersect, i.e. the
	// movement is within sampling variation.
	Overlap bool
}

// Changes returns one Change per consecutive pair of points in t.
// A single-point table has no changes.
func Changes(t *Table) []Change {
	if t.Len() < 2 {
		return nil
	}

	out := make([]Change, 0, t.Len()-1)
	for i := 1; i < t.Len(); i++ {
		prev, cur := t.points[i-1], t.points[i]
		delta := cur.Estimate - prev.Estimate

		dir := DirectionFlat
		switch {
		case math.Abs(delta) < FlatThreshold:
		case delta > 0:
			dir = DirectionUp
		default:
			dir = DirectionDown
		}

		out = append(out, Change{
			From:      prev.Period,
			To:        cur.Period,
			Delta:     delta,
			Direction: dir,
			Overlap:   prev.Lower() <= cur.Upper() && cur.Lower() <= prev.Upper(),
		})
	}
	return out
}
