// Package mocap implements the motion-capture data processing engine:
// a set of pure, stateless transforms that repair, stabilise and align
// noisy per-frame 2D marker positions before they reach rendering or
// analysis consumers.
//
// Every transform returns a fresh Frame or Sequence and never mutates
// its inputs, so independent frames and sequences can safely be
// processed concurrently by callers.
package mocap

import (
	"fmt"
	"sort"
)

// Point is a 2D position in capture-space units.
type Point struct {
	X float64
	Y float64
}

// MarkerID identifies a tracked anatomical landmark. IDs are supplied
// by the ingestion layer and must be stable across the frames of a
// sequence. A valid ID is non-empty printable ASCII.
type MarkerID string

// ParseMarkerID validates s and returns it as a MarkerID.
func ParseMarkerID(s string) (MarkerID, error) {
	if s == "" {
		return "", fmt.Errorf("marker id must not be empty")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return "", fmt.Errorf("marker id %q contains non-printable or non-ASCII byte at index %d", s, i)
		}
	}
	return MarkerID(s), nil
}

// MarkerSample is one marker's observation in one frame.
//
// Confidence is a per-sample reliability scalar, conventionally in
// [0,1] but not enforced. A sample with Visible == false is never used
// as a position source by any transform; it is skipped as if absent.
type MarkerSample struct {
	Pos        Point
	Confidence float64
	Visible    bool
}

// Frame is one time-sampled snapshot of all observed markers.
type Frame struct {
	// Number is the frame index, monotonic within a sequence.
	Number int
	// Timestamp is the capture time in seconds.
	Timestamp float64
	// Markers maps marker ID to its observation. A missing key means
	// the marker was not observed in this frame.
	Markers map[MarkerID]MarkerSample
}

// Clone returns a deep copy of the frame. Transforms build their
// outputs from clones so inputs are never touched.
func (f Frame) Clone() Frame {
	out := Frame{Number: f.Number, Timestamp: f.Timestamp}
	if f.Markers != nil {
		out.Markers = make(map[MarkerID]MarkerSample, len(f.Markers))
		for id, s := range f.Markers {
			out.Markers[id] = s
		}
	}
	return out
}

// VisibleSample returns the sample for id if it is present and
// visible. This is the only accessor transforms use to read positions.
func (f Frame) VisibleSample(id MarkerID) (MarkerSample, bool) {
	s, ok := f.Markers[id]
	if !ok || !s.Visible {
		return MarkerSample{}, false
	}
	return s, true
}

// MarkerIDs returns the frame's marker keys in sorted order. Map
// iteration order is not deterministic; transforms that must be
// repeatable across runs iterate keys through this helper.
func (f Frame) MarkerIDs() []MarkerID {
	ids := make([]MarkerID, 0, len(f.Markers))
	for id := range f.Markers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Sequence is an ordered list of frames plus capture timing metadata.
type Sequence struct {
	Frames    []Frame
	FPS       float64
	Duration  float64 // seconds
	StartTime float64 // seconds
	EndTime   float64 // seconds
}

// Clone returns a deep copy of the sequence.
func (s Sequence) Clone() Sequence {
	out := s
	if s.Frames != nil {
		out.Frames = make([]Frame, len(s.Frames))
		for i, f := range s.Frames {
			out.Frames[i] = f.Clone()
		}
	}
	return out
}
