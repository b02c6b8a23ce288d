// Package geo provides the geometry helpers used by the correction pipeline.
package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// Distance returns the distance between two points in meters.
// Coordinates are treated as longitude/latitude pairs.
func Distance(a, b orb.Point) float64 {
	return orbgeo.Distance(a, b)
}

// ReversePath returns a new slice with the point order of part reversed.
func ReversePath(part []orb.Point) []orb.Point {
	out := make([]orb.Point, len(part))
	for i, pt := range part {
		out[len(part)-i-1] = pt
	}
	return out
}
