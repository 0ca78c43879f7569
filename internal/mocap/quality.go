package mocap

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SequenceStats holds aggregate capture-quality metrics for one
// sequence. Analysis consumers use these to judge whether a capture
// needs repair (estimation, solving, smoothing) before display.
type SequenceStats struct {
	FrameCount  int `json:"frame_count"`
	MarkerCount int `json:"marker_count"` // distinct marker IDs seen anywhere

	// Observation quality
	VisibilityRatio float64 `json:"visibility_ratio"` // visible samples / all samples
	MeanConfidence  float64 `json:"mean_confidence"`  // over visible samples
	StdConfidence   float64 `json:"std_confidence"`

	// Inter-frame motion, from the same motion-magnitude series the
	// synchroniser correlates on
	MeanMotion float64 `json:"mean_motion"`
	PeakMotion float64 `json:"peak_motion"`

	// Per-marker presence: fraction of frames each marker is visible in
	MarkerCoverage map[MarkerID]float64 `json:"marker_coverage"`
}

// ComputeSequenceStats calculates aggregate statistics for seq. A
// sequence with no frames yields the zero value.
func ComputeSequenceStats(seq Sequence) SequenceStats {
	if len(seq.Frames) == 0 {
		return SequenceStats{}
	}

	stats := SequenceStats{
		FrameCount:     len(seq.Frames),
		MarkerCoverage: make(map[MarkerID]float64),
	}

	var totalSamples, visibleSamples int
	var confidences []float64
	visibleFrames := make(map[MarkerID]int)

	for _, f := range seq.Frames {
		for id, s := range f.Markers {
			totalSamples++
			if !s.Visible {
				continue
			}
			visibleSamples++
			visibleFrames[id]++
			confidences = append(confidences, s.Confidence)
		}
	}

	stats.MarkerCount = len(markerUniverse(seq))
	for id, n := range visibleFrames {
		stats.MarkerCoverage[id] = float64(n) / float64(len(seq.Frames))
	}
	if totalSamples > 0 {
		stats.VisibilityRatio = float64(visibleSamples) / float64(totalSamples)
	}
	if len(confidences) > 0 {
		stats.MeanConfidence = stat.Mean(confidences, nil)
		if len(confidences) > 1 {
			stats.StdConfidence = stat.StdDev(confidences, nil)
		}
	}

	if motion := motionSeries(seq); len(motion) > 0 {
		stats.MeanMotion = stat.Mean(motion, nil)
		stats.PeakMotion = floats.Max(motion)
	}
	return stats
}

// markerUniverse returns every marker ID appearing in any frame of
// seq, visible or not, in sorted order.
func markerUniverse(seq Sequence) []MarkerID {
	seen := make(map[MarkerID]struct{})
	for _, f := range seq.Frames {
		for id := range f.Markers {
			seen[id] = struct{}{}
		}
	}
	ids := make([]MarkerID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
