package rail

import (
	"github.com/railgeo/linefix/internal/geo"
)

// LookupError reports a station code no station feature carries. It is
// fatal for the whole correction run.
type LookupError struct {
	Code string
}

func (e *LookupError) Error() string {
	return e.Code + " not found"
}

// ShouldReverse reports whether the segment's stored path runs opposite to
// its declared code1→code2 endpoint order: true when the path's first point
// is strictly closer to the code2 station than to the code1 station.
// Equidistant endpoints count as correctly ordered.
func ShouldReverse(seg Segment, idx StationIndex) (bool, error) {
	s1, ok := idx[seg.Code1]
	if !ok {
		return false, &LookupError{Code: seg.Code1}
	}
	s2, ok := idx[seg.Code2]
	if !ok {
		return false, &LookupError{Code: seg.Code2}
	}
	first := seg.Path[0][0]
	return geo.Distance(first, s1.Point) > geo.Distance(first, s2.Point), nil
}
