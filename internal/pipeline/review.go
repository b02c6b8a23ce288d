package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"

	geojson "github.com/paulmach/go.geojson"
	"github.com/rs/zerolog/log"

	"github.com/railgeo/linefix/internal/rail"
)

// writeReview writes the flagged segments, in corrected point order, as a
// GeoJSON FeatureCollection so a proposed correction can be inspected on a
// map before it is applied.
func writeReview(path string, corrected []rail.Segment) error {
	fc := geojson.NewFeatureCollection()
	for _, seg := range corrected {
		lines := make([][][]float64, len(seg.Path))
		for i, part := range seg.Path {
			coords := make([][]float64, len(part))
			for j, pt := range part {
				coords[j] = []float64{pt[0], pt[1]}
			}
			lines[i] = coords
		}

		var f *geojson.Feature
		if len(lines) == 1 {
			f = geojson.NewLineStringFeature(lines[0])
		} else {
			f = geojson.NewMultiLineStringFeature(lines...)
		}
		f.SetProperty("code1", seg.Code1)
		f.SetProperty("code2", seg.Code2)
		fc.AddFeature(f)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	return json.NewEncoder(f).Encode(fc)
}
