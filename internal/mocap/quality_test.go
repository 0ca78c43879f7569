package mocap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSequenceStats(t *testing.T) {
	t.Parallel()

	t.Run("empty sequence yields zero value", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, SequenceStats{}, ComputeSequenceStats(Sequence{}))
	})

	t.Run("counts and ratios", func(t *testing.T) {
		t.Parallel()
		seq := Sequence{FPS: 30, Frames: []Frame{
			frame(0, map[MarkerID]MarkerSample{
				"hip":   visConf(0, 0, 0.8),
				"knee":  visConf(1, 0, 0.6),
				"ankle": hidden(2, 0),
			}),
			frame(1, map[MarkerID]MarkerSample{
				"hip":  visConf(0, 1, 0.8),
				"knee": hidden(1, 1),
			}),
		}}

		stats := ComputeSequenceStats(seq)
		require.Equal(t, 2, stats.FrameCount)
		assert.Equal(t, 3, stats.MarkerCount)
		// 3 visible of 5 samples total
		assert.InDelta(t, 0.6, stats.VisibilityRatio, 1e-9)
		// mean of 0.8, 0.6, 0.8
		assert.InDelta(t, 2.2/3.0, stats.MeanConfidence, 1e-9)

		require.Contains(t, stats.MarkerCoverage, MarkerID("hip"))
		assert.InDelta(t, 1.0, stats.MarkerCoverage["hip"], 1e-9)
		assert.InDelta(t, 0.5, stats.MarkerCoverage["knee"], 1e-9)
		assert.NotContains(t, stats.MarkerCoverage, MarkerID("ankle"))
	})

	t.Run("motion metrics match the synchroniser's series", func(t *testing.T) {
		t.Parallel()
		seq := impulseSequence(10, 5, 8)

		stats := ComputeSequenceStats(seq)
		// One spike of magnitude 8 across 9 series entries.
		assert.InDelta(t, 8.0/9.0, stats.MeanMotion, 1e-9)
		assert.InDelta(t, 8.0, stats.PeakMotion, 1e-9)
	})

	t.Run("static sequence has no motion", func(t *testing.T) {
		t.Parallel()
		seq := staticSequence(5, map[MarkerID]MarkerSample{"m": vis(3, 3)})

		stats := ComputeSequenceStats(seq)
		assert.Zero(t, stats.MeanMotion)
		assert.Zero(t, stats.PeakMotion)
		assert.InDelta(t, 1.0, stats.VisibilityRatio, 1e-9)
	})
}
