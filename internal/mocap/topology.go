package mocap

import "fmt"

// Joint is a length-constrained edge between two markers. It is not an
// anatomical rotational joint: only the straight-line distance between
// its endpoints is constrained.
//
// Length <= 0 means "unconstrained/uninitialised"; such joints are
// ignored by the solver and the estimator.
type Joint struct {
	Start  MarkerID
	End    MarkerID
	Length float64
	Name   string
}

// Constrained reports whether the joint carries a usable length
// constraint.
func (j Joint) Constrained() bool { return j.Length > 0 }

// Other returns the endpoint opposite to id, and whether id is one of
// the joint's endpoints at all.
func (j Joint) Other(id MarkerID) (MarkerID, bool) {
	switch id {
	case j.Start:
		return j.End, true
	case j.End:
		return j.Start, true
	}
	return "", false
}

// Topology is the ordered list of joints defining which marker pairs
// are constrained. Order is significant: the solver relaxes joints in
// topology order each pass, and the estimator breaks anchor ties by
// taking the first qualifying joint in topology order.
type Topology []Joint

// Validate checks the structural integrity of the topology: endpoints
// must be valid marker IDs and a joint may not connect a marker to
// itself. Length and duplicate-pair checks are deliberately absent;
// zero-length joints are legal "unconstrained" placeholders.
func (t Topology) Validate() error {
	for i, j := range t {
		if _, err := ParseMarkerID(string(j.Start)); err != nil {
			return fmt.Errorf("joint %d (%s): bad start marker: %w", i, j.Name, err)
		}
		if _, err := ParseMarkerID(string(j.End)); err != nil {
			return fmt.Errorf("joint %d (%s): bad end marker: %w", i, j.Name, err)
		}
		if j.Start == j.End {
			return fmt.Errorf("joint %d (%s): start and end are both %q", i, j.Name, j.Start)
		}
		if j.Length < 0 {
			return fmt.Errorf("joint %d (%s): negative length %f", i, j.Name, j.Length)
		}
	}
	return nil
}

// JointsTouching returns the indices of constrained joints that have
// id as an endpoint, in topology order.
func (t Topology) JointsTouching(id MarkerID) []int {
	var idx []int
	for i, j := range t {
		if !j.Constrained() {
			continue
		}
		if j.Start == id || j.End == id {
			idx = append(idx, i)
		}
	}
	return idx
}
