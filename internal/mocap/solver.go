package mocap

import "fmt"

// solverNode is the working state for one visible marker during a
// Solve call. Confidence acts as the correction stiffness: higher
// confidence means the node moves less.
type solverNode struct {
	pos  Point
	conf float64
}

// Solve relaxes the positions of frame's visible markers toward the
// target segment lengths of topo and returns the result as a new
// frame. iterations full passes are made over the joint list in
// topology order; positions update in place within the working set so
// corrections propagate along joint chains across passes. This is an
// approximate relaxation solver — no convergence is guaranteed or
// claimed.
//
// Only joints with Length > 0 whose both endpoints are visible
// participate. Coincident endpoints (current distance zero) are
// skipped: the correction direction is undefined. Each qualifying
// joint splits its correction inversely by relative confidence, so the
// less trusted endpoint absorbs the larger share of the move.
//
// Invisible markers, unconstrained markers, confidences and visibility
// flags all pass through unchanged. iterations == 0 returns a copy of
// the input. Negative iterations is a caller contract violation.
func Solve(frame Frame, topo Topology, iterations int) (Frame, error) {
	if iterations < 0 {
		return Frame{}, fmt.Errorf("solver iterations must be non-negative, got %d", iterations)
	}

	work := make(map[MarkerID]*solverNode, len(frame.Markers))
	for id, s := range frame.Markers {
		if s.Visible {
			work[id] = &solverNode{pos: s.Pos, conf: s.Confidence}
		}
	}

	for pass := 0; pass < iterations; pass++ {
		for _, j := range topo {
			if !j.Constrained() {
				continue
			}
			a, okA := work[j.Start]
			b, okB := work[j.End]
			if !okA || !okB {
				continue
			}

			d := Distance(a.pos, b.pos)
			if d == 0 {
				continue
			}
			correction := (j.Length - d) / d

			// Inverse-confidence split: each endpoint's share is the
			// other endpoint's confidence over the sum, so the less
			// confident endpoint moves further. Two zero-confidence
			// endpoints split evenly.
			shareA, shareB := 0.5, 0.5
			if sum := a.conf + b.conf; sum > 0 {
				shareA = b.conf / sum
				shareB = a.conf / sum
			}

			dx, dy := Sub(a.pos, b.pos)
			a.pos.X -= dx * 0.5 * correction * shareA
			a.pos.Y -= dy * 0.5 * correction * shareA
			b.pos.X += dx * 0.5 * correction * shareB
			b.pos.Y += dy * 0.5 * correction * shareB
		}
	}

	out := frame.Clone()
	for id, n := range work {
		s := out.Markers[id]
		s.Pos = n.pos
		out.Markers[id] = s
	}
	return out, nil
}
