// Package pipeline runs one end-to-end correction pass over the feature
// service: fetch stations and line segments, decide per segment whether its
// stored path is reversed, and submit the corrected segments as one batch
// update.
package pipeline

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/railgeo/linefix/internal/arcgis"
	"github.com/railgeo/linefix/internal/config"
	"github.com/railgeo/linefix/internal/rail"
)

// Options control one run.
type Options struct {
	// ReviewPath, when set, writes the flagged segments to a GeoJSON file
	// and skips the batch update entirely.
	ReviewPath string
}

// Report tallies one correction run.
type Report struct {
	Checked   int
	Flagged   int
	Succeeded int
	Failed    int
}

// Run executes the correction pass. A station code referenced by a segment
// but missing from the station layer aborts the whole run before any update
// is issued.
func Run(ctx context.Context, client *arcgis.Client, cfg *config.Config, opts Options) (Report, error) {
	var report Report

	log.Info().Str("layer", cfg.StationsLayer).Msg("Fetching stations")
	stations, err := client.Query(ctx, cfg.StationsLayer)
	if err != nil {
		return report, errors.Wrap(err, "fetch stations")
	}

	log.Info().Str("layer", cfg.LinesLayer).Msg("Fetching line segments")
	lines, err := client.Query(ctx, cfg.LinesLayer)
	if err != nil {
		return report, errors.Wrap(err, "fetch line segments")
	}

	idx := rail.BuildIndex(stations, cfg.CodeField)
	log.Info().
		Int("stations", len(idx)).
		Int("segments", len(lines)).
		Msg("Station index built")

	var corrected []rail.Segment
	for _, f := range lines {
		seg := rail.NewSegment(f, cfg.Code1Field, cfg.Code2Field)
		if len(seg.Path) == 0 || len(seg.Path[0]) == 0 {
			log.Warn().
				Str("code1", seg.Code1).
				Str("code2", seg.Code2).
				Msg("Segment has no path geometry, skipping")
			continue
		}
		report.Checked++

		reverse, err := rail.ShouldReverse(seg, idx)
		if err != nil {
			return report, err
		}
		if !reverse {
			log.Info().Str("code1", seg.Code1).Str("code2", seg.Code2).Msg("Segment is correct")
			continue
		}
		log.Info().Str("code1", seg.Code1).Str("code2", seg.Code2).Msg("Segment should reverse")
		corrected = append(corrected, rail.Reverse(seg))
	}
	report.Flagged = len(corrected)

	if len(corrected) == 0 {
		log.Info().Int("checked", report.Checked).Msg("All segments are correct, nothing to update")
		return report, nil
	}

	if opts.ReviewPath != "" {
		log.Info().
			Str("path", opts.ReviewPath).
			Int("flagged", report.Flagged).
			Msg("Review mode, writing flagged segments instead of updating")
		return report, writeReview(opts.ReviewPath, corrected)
	}

	updates := make([]arcgis.Feature, len(corrected))
	for i, seg := range corrected {
		updates[i] = seg.Feature
	}
	results, err := client.ApplyEdits(ctx, cfg.LinesLayer, updates)
	if err != nil {
		return report, errors.Wrap(err, "submit corrections")
	}

	for i, res := range results {
		if res.Success {
			report.Succeeded++
			continue
		}
		report.Failed++
		event := log.Error().Int64("object_id", res.ObjectID)
		if i < len(corrected) {
			event = event.Str("code1", corrected[i].Code1).Str("code2", corrected[i].Code2)
		}
		if res.Error != nil {
			event = event.Int("code", res.Error.Code).Str("detail", res.Error.Description)
		}
		event.Msg("Segment update rejected")
	}

	log.Info().
		Int("checked", report.Checked).
		Int("flagged", report.Flagged).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("Batch update finished")

	return report, nil
}
