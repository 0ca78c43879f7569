package mocap

// Fuse blends two time-aligned frames of the same capture subject and
// returns a new frame carrying exactly primary's marker key set.
//
// blendRatio steers the blend toward secondary: each marker visible in
// both frames is averaged with weights primaryConf*(1-blendRatio) and
// secondaryConf*blendRatio. blendRatio 0 reproduces primary's
// positions wherever primary has nonzero confidence; blendRatio 1
// fully prefers secondary whenever its confidence is nonzero. Values
// outside [0,1] are not clamped — the weighted average extrapolates.
//
// The fused sample's confidence is the larger of the two source
// confidences; visibility stays primary's. Markers missing or
// invisible in secondary, markers invisible in primary, and
// zero-weight-sum blends all pass primary's sample through unchanged.
func Fuse(primary, secondary Frame, blendRatio float64) Frame {
	out := primary.Clone()

	for id, p := range primary.Markers {
		if !p.Visible {
			continue
		}
		s, ok := secondary.VisibleSample(id)
		if !ok {
			continue
		}

		wp := p.Confidence * (1 - blendRatio)
		ws := s.Confidence * blendRatio
		sum := wp + ws
		if sum == 0 {
			continue
		}

		// One-sided weights short-circuit so a pure copy stays exact
		// instead of picking up w/w rounding.
		switch {
		case ws == 0:
			// position already primary's
		case wp == 0:
			p.Pos = s.Pos
		default:
			p.Pos = Point{
				X: (p.Pos.X*wp + s.Pos.X*ws) / sum,
				Y: (p.Pos.Y*wp + s.Pos.Y*ws) / sum,
			}
		}
		if s.Confidence > p.Confidence {
			p.Confidence = s.Confidence
		}
		out.Markers[id] = p
	}
	return out
}
