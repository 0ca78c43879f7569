package mocap

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Align temporally aligns two independently-captured sequences of the
// same motion by cross-correlating their motion-magnitude series, and
// returns both sequences with any leading lag frames removed. Inputs
// are never mutated.
//
// If either sequence has fewer than compareWindow frames, both are
// returned unchanged. Candidate integer offsets span
// [-maxOffset, +maxOffset] with maxOffset = min(|seqA|/4, |seqB|/4);
// each offset is scored by the average product of the two motion
// series over the first compareWindow overlapping indices. The scan
// runs from the most negative offset upward and only a strictly
// greater score displaces the incumbent, so amplitude ties keep the
// earliest offset found. A positive winning offset drops that many
// leading frames from seqA; a negative one drops from seqB; zero
// leaves both untouched.
//
// compareWindow must be non-negative; that is a caller contract
// violation, not a data-quality condition.
func Align(seqA, seqB Sequence, compareWindow int) (Sequence, Sequence, error) {
	if compareWindow < 0 {
		return Sequence{}, Sequence{}, fmt.Errorf("compare window must be non-negative, got %d", compareWindow)
	}
	if len(seqA.Frames) < compareWindow || len(seqB.Frames) < compareWindow {
		return seqA.Clone(), seqB.Clone(), nil
	}

	motionA := motionSeries(seqA)
	motionB := motionSeries(seqB)

	maxOffset := len(seqA.Frames) / 4
	if b := len(seqB.Frames) / 4; b < maxOffset {
		maxOffset = b
	}

	bestOffset := 0
	bestScore := math.Inf(-1)
	for k := -maxOffset; k <= maxOffset; k++ {
		start := 0
		if k < 0 {
			start = -k
		}
		n := len(motionA) - start
		if m := len(motionB) - k - start; m < n {
			n = m
		}
		if n > compareWindow {
			n = compareWindow
		}
		if n <= 0 {
			continue
		}

		score := floats.Dot(motionA[start:start+n], motionB[start+k:start+k+n]) / float64(n)
		if score > bestScore {
			bestScore = score
			bestOffset = k
		}
	}

	switch {
	case bestOffset > 0:
		return trimLeading(seqA, bestOffset), seqB.Clone(), nil
	case bestOffset < 0:
		return seqA.Clone(), trimLeading(seqB, -bestOffset), nil
	}
	return seqA.Clone(), seqB.Clone(), nil
}

// motionSeries computes per-adjacent-frame motion magnitudes: element
// i is the mean Euclidean displacement between frames i and i+1 over
// marker keys visible in both, or 0 when no key is visible in both.
func motionSeries(seq Sequence) []float64 {
	if len(seq.Frames) < 2 {
		return nil
	}
	series := make([]float64, len(seq.Frames)-1)
	var dists []float64
	for i := 0; i < len(seq.Frames)-1; i++ {
		cur, next := seq.Frames[i], seq.Frames[i+1]
		dists = dists[:0]
		for id, s := range cur.Markers {
			if !s.Visible {
				continue
			}
			ns, ok := next.VisibleSample(id)
			if !ok {
				continue
			}
			dists = append(dists, Distance(s.Pos, ns.Pos))
		}
		if len(dists) > 0 {
			series[i] = stat.Mean(dists, nil)
		}
	}
	return series
}

// trimLeading returns a copy of seq without its first n frames. FPS
// carries over; duration and the start/end times are recomputed from
// the surviving frame timestamps.
func trimLeading(seq Sequence, n int) Sequence {
	out := Sequence{FPS: seq.FPS}
	if n >= len(seq.Frames) {
		return out
	}
	out.Frames = make([]Frame, len(seq.Frames)-n)
	for i, f := range seq.Frames[n:] {
		out.Frames[i] = f.Clone()
	}
	out.StartTime = out.Frames[0].Timestamp
	out.EndTime = out.Frames[len(out.Frames)-1].Timestamp
	out.Duration = out.EndTime - out.StartTime
	return out
}
