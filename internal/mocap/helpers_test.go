package mocap

// Shared builders for the engine tests. Confidence defaults to 1 and
// visibility to true unless a test says otherwise.

func vis(x, y float64) MarkerSample {
	return MarkerSample{Pos: Point{X: x, Y: y}, Confidence: 1, Visible: true}
}

func visConf(x, y, conf float64) MarkerSample {
	return MarkerSample{Pos: Point{X: x, Y: y}, Confidence: conf, Visible: true}
}

func hidden(x, y float64) MarkerSample {
	return MarkerSample{Pos: Point{X: x, Y: y}, Confidence: 1, Visible: false}
}

func frame(n int, markers map[MarkerID]MarkerSample) Frame {
	return Frame{Number: n, Timestamp: float64(n) / 30.0, Markers: markers}
}

// staticSequence builds n frames all carrying the same marker map.
func staticSequence(n int, markers map[MarkerID]MarkerSample) Sequence {
	seq := Sequence{FPS: 30}
	for i := 0; i < n; i++ {
		m := make(map[MarkerID]MarkerSample, len(markers))
		for id, s := range markers {
			m[id] = s
		}
		seq.Frames = append(seq.Frames, frame(i, m))
	}
	if n > 0 {
		seq.StartTime = seq.Frames[0].Timestamp
		seq.EndTime = seq.Frames[n-1].Timestamp
		seq.Duration = seq.EndTime - seq.StartTime
	}
	return seq
}

// impulseSequence builds n frames of a single marker "M" sitting at
// x=0 until frame jumpAt, then at x=jump from frame jumpAt onward. Its
// motion-magnitude series is zero everywhere except index jumpAt-1.
func impulseSequence(n, jumpAt int, jump float64) Sequence {
	seq := Sequence{FPS: 30}
	for i := 0; i < n; i++ {
		x := 0.0
		if i >= jumpAt {
			x = jump
		}
		seq.Frames = append(seq.Frames, frame(i, map[MarkerID]MarkerSample{
			"M": vis(x, 0),
		}))
	}
	seq.StartTime = seq.Frames[0].Timestamp
	seq.EndTime = seq.Frames[n-1].Timestamp
	seq.Duration = seq.EndTime - seq.StartTime
	return seq
}
