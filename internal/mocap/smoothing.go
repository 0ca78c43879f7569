package mocap

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Smooth applies a sliding-window, confidence-weighted average to the
// marker positions of seq and returns the result as a new sequence of
// the same length. windowSize must be an odd integer >= 1; the window
// for frame i spans [i-windowSize/2, i+windowSize/2] clipped to the
// sequence bounds, so boundary frames use a smaller asymmetric window
// rather than padding or wraparound.
//
// For each marker key present in frame i, all visible samples of that
// key within the window contribute position x confidence; absent and
// invisible samples are discarded. If no usable samples remain (or
// their confidences sum to zero, leaving the weighted mean undefined)
// the frame's own sample passes through unchanged. Only the position
// is smoothed: output confidence and visibility are taken verbatim
// from frame i. windowSize == 1 is a no-op.
func Smooth(seq Sequence, windowSize int) (Sequence, error) {
	if windowSize < 1 || windowSize%2 == 0 {
		return Sequence{}, fmt.Errorf("smoothing window must be a positive odd integer, got %d", windowSize)
	}

	out := seq.Clone()
	if windowSize == 1 {
		return out, nil
	}
	half := windowSize / 2

	// Scratch slices reused across markers; windows are tiny relative
	// to sequence length.
	xs := make([]float64, 0, windowSize)
	ys := make([]float64, 0, windowSize)
	ws := make([]float64, 0, windowSize)

	for i, f := range seq.Frames {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(seq.Frames)-1 {
			hi = len(seq.Frames) - 1
		}

		for id, s := range f.Markers {
			xs, ys, ws = xs[:0], ys[:0], ws[:0]
			wsum := 0.0
			for w := lo; w <= hi; w++ {
				ns, ok := seq.Frames[w].VisibleSample(id)
				if !ok {
					continue
				}
				xs = append(xs, ns.Pos.X)
				ys = append(ys, ns.Pos.Y)
				ws = append(ws, ns.Confidence)
				wsum += ns.Confidence
			}
			if len(ws) == 0 || wsum == 0 {
				continue
			}

			s.Pos = Point{X: stat.Mean(xs, ws), Y: stat.Mean(ys, ws)}
			out.Frames[i].Markers[id] = s
		}
	}
	return out, nil
}
