package mocap

// EstimatedConfidence is the confidence assigned to every marker
// position synthesised by FillMissing. Synthesised positions are
// geometric guesses, so they rank below any direct observation at
// full confidence.
const EstimatedConfidence = 0.5

// FillMissing synthesises positions for markers that are absent or
// invisible in frame but sit at the far end of a constrained joint
// whose other endpoint is visible. The result is a new frame; the
// input is untouched.
//
// For each joint in topology order with Length > 0 and exactly one
// visible endpoint, the estimator takes the first other constrained
// joint in topology order that also touches the visible endpoint; its
// far endpoint ("anchor") must itself be visible, otherwise the marker
// stays missing. Only the anchor's direction is used: the missing
// marker is placed at the joint's own target length from the known
// endpoint, along the unit vector from the known endpoint toward the
// anchor. Synthesised samples get EstimatedConfidence and
// Visible == true.
//
// Visibility is judged against the input frame throughout, so a marker
// synthesised in this pass never serves as an anchor within the same
// call and is never re-synthesised by a later joint in the same pass
// (the first qualifying joint in topology order wins). Multi-hop
// filling requires repeated calls. Joints with both endpoints missing,
// and missing markers with no qualifying anchor, are left unresolved.
func FillMissing(frame Frame, topo Topology) Frame {
	out := frame.Clone()
	if out.Markers == nil {
		out.Markers = make(map[MarkerID]MarkerSample)
	}

	for i, j := range topo {
		if !j.Constrained() {
			continue
		}
		knownSample, startVisible := frame.VisibleSample(j.Start)
		endSample, endVisible := frame.VisibleSample(j.End)
		if startVisible == endVisible {
			continue // both visible or both missing
		}

		known, missing := j.Start, j.End
		if endVisible {
			known, missing = j.End, j.Start
			knownSample = endSample
		}

		// Already filled by an earlier joint this pass.
		if _, done := out.VisibleSample(missing); done {
			continue
		}

		anchorPos, found := findAnchor(frame, topo, i, known)
		if !found {
			continue
		}
		ux, uy, ok := Unit(knownSample.Pos, anchorPos)
		if !ok {
			continue // anchor coincides with the known endpoint
		}

		out.Markers[missing] = MarkerSample{
			Pos: Point{
				X: knownSample.Pos.X + ux*j.Length,
				Y: knownSample.Pos.Y + uy*j.Length,
			},
			Confidence: EstimatedConfidence,
			Visible:    true,
		}
	}
	return out
}

// findAnchor locates the first constrained joint other than index
// skip that touches known, and returns its far endpoint's position.
// The far endpoint of that first joint must be visible in frame; an
// invisible one fails the search rather than passing it to a later
// joint.
func findAnchor(frame Frame, topo Topology, skip int, known MarkerID) (Point, bool) {
	for i, j := range topo {
		if i == skip || !j.Constrained() {
			continue
		}
		other, touches := j.Other(known)
		if !touches {
			continue
		}
		s, ok := frame.VisibleSample(other)
		if !ok {
			return Point{}, false
		}
		return s.Pos, true
	}
	return Point{}, false
}
