package rail

import (
	"github.com/paulmach/orb"

	"github.com/railgeo/linefix/internal/arcgis"
	"github.com/railgeo/linefix/internal/geo"
)

// Reverse returns a copy of seg with the point order of every path part
// reversed. The part order itself and all attributes, including
// code1/code2, stay as they are; only the stored point order changes.
func Reverse(seg Segment) Segment {
	path := make([][]orb.Point, len(seg.Path))
	for i, part := range seg.Path {
		path[i] = geo.ReversePath(part)
	}
	return Segment{
		Code1: seg.Code1,
		Code2: seg.Code2,
		Path:  path,
		Feature: arcgis.Feature{
			Attributes: seg.Feature.Attributes,
			Geometry:   &arcgis.Geometry{Paths: pathToEsri(path)},
		},
	}
}
