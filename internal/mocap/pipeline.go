package mocap

import "fmt"

// PipelineConfig holds the tunable parameters for the standard repair
// pipeline. The engine itself is stateless: recomputation happens only
// when the owning collaborator calls Process again, never from hidden
// option state.
type PipelineConfig struct {
	// FillPasses is how many times the missing-marker estimator runs
	// per frame. The estimator never propagates within a pass, so each
	// extra pass extends filling by one hop along the topology.
	FillPasses int
	// SolverIterations is passed straight to Solve.
	SolverIterations int
	// SmoothingWindow is passed straight to Smooth. Must be odd.
	SmoothingWindow int
}

// DefaultPipelineConfig returns the default repair parameters.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		FillPasses:       1,
		SolverIterations: 5,
		SmoothingWindow:  5,
	}
}

// Validate checks the structural constraints on the configuration.
func (c PipelineConfig) Validate() error {
	if c.FillPasses < 0 {
		return fmt.Errorf("fill passes must be non-negative, got %d", c.FillPasses)
	}
	if c.SolverIterations < 0 {
		return fmt.Errorf("solver iterations must be non-negative, got %d", c.SolverIterations)
	}
	if c.SmoothingWindow < 1 || c.SmoothingWindow%2 == 0 {
		return fmt.Errorf("smoothing window must be a positive odd integer, got %d", c.SmoothingWindow)
	}
	return nil
}

// Process runs the standard repair pipeline over seq: per frame,
// FillPasses rounds of missing-marker estimation followed by the
// length-constraint solver, then confidence-weighted smoothing across
// the whole sequence. The input is never mutated.
func Process(seq Sequence, topo Topology, cfg PipelineConfig) (Sequence, error) {
	if err := cfg.Validate(); err != nil {
		return Sequence{}, fmt.Errorf("pipeline config: %w", err)
	}

	repaired := seq.Clone()
	for i, f := range repaired.Frames {
		for pass := 0; pass < cfg.FillPasses; pass++ {
			f = FillMissing(f, topo)
		}
		solved, err := Solve(f, topo, cfg.SolverIterations)
		if err != nil {
			return Sequence{}, err
		}
		repaired.Frames[i] = solved
	}

	return Smooth(repaired, cfg.SmoothingWindow)
}
