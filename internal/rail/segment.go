package rail

import (
	"github.com/paulmach/orb"

	"github.com/railgeo/linefix/internal/arcgis"
)

// Segment is one rail line segment between the stations named by its
// code1/code2 attributes. Feature keeps the record exactly as fetched so an
// update round-trips every other attribute unchanged.
type Segment struct {
	Code1   string
	Code2   string
	Path    [][]orb.Point
	Feature arcgis.Feature
}

// NewSegment parses a line feature using the configured attribute fields.
func NewSegment(f arcgis.Feature, code1Field, code2Field string) Segment {
	seg := Segment{
		Code1:   attrString(f.Attributes[code1Field]),
		Code2:   attrString(f.Attributes[code2Field]),
		Feature: f,
	}
	if f.Geometry != nil {
		seg.Path = pathFromEsri(f.Geometry.Paths)
	}
	return seg
}

func pathFromEsri(paths [][][2]float64) [][]orb.Point {
	path := make([][]orb.Point, len(paths))
	for i, part := range paths {
		pts := make([]orb.Point, len(part))
		for j, c := range part {
			pts[j] = orb.Point{c[0], c[1]}
		}
		path[i] = pts
	}
	return path
}

func pathToEsri(path [][]orb.Point) [][][2]float64 {
	paths := make([][][2]float64, len(path))
	for i, part := range path {
		coords := make([][2]float64, len(part))
		for j, pt := range part {
			coords[j] = [2]float64{pt[0], pt[1]}
		}
		paths[i] = coords
	}
	return paths
}
