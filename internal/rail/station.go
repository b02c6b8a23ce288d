// Package rail decides whether stored rail segment paths run opposite to
// their declared station endpoints, and corrects the ones that do.
package rail

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/railgeo/linefix/internal/arcgis"
)

// Station is one rail station with its point location.
type Station struct {
	Code  string
	Point orb.Point
}

// StationIndex maps a station code to its station.
type StationIndex map[string]Station

// BuildIndex builds a StationIndex from raw station features. When the same
// code appears twice the later record wins. Coordinates are taken as-is.
func BuildIndex(features []arcgis.Feature, codeField string) StationIndex {
	idx := make(StationIndex, len(features))
	for _, f := range features {
		if f.Geometry == nil {
			continue
		}
		code := attrString(f.Attributes[codeField])
		idx[code] = Station{
			Code:  code,
			Point: orb.Point{f.Geometry.X, f.Geometry.Y},
		}
	}
	return idx
}

// attrString renders an attribute value as the station code string.
// Services deliver numeric codes as float64.
func attrString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}
