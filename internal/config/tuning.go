package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/motion.repair/internal/mocap"
)

// TuningConfig is a JSON override document for the engine's tunable
// parameters. All fields are optional pointers: fields omitted from
// the JSON file fall back to the engine defaults, so partial configs
// are safe.
type TuningConfig struct {
	// Repair pipeline params
	FillPasses       *int `json:"fill_passes,omitempty"`
	SolverIterations *int `json:"solver_iterations,omitempty"`
	SmoothingWindow  *int `json:"smoothing_window,omitempty"`

	// Fusion / synchroniser params
	BlendRatio    *float64 `json:"blend_ratio,omitempty"`
	CompareWindow *int     `json:"compare_window,omitempty"`
}

// EmptyTuningConfig returns a TuningConfig with all fields unset.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The file
// must have a .json extension and stay under the max file size.
// Unknown fields are rejected so typos fail loudly instead of
// silently running on defaults.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that any set fields carry structurally valid values.
// The ranges mirror the engine's caller contracts: these are the same
// checks the transforms themselves enforce.
func (c *TuningConfig) Validate() error {
	if c.FillPasses != nil && *c.FillPasses < 0 {
		return fmt.Errorf("fill_passes must be non-negative, got %d", *c.FillPasses)
	}
	if c.SolverIterations != nil && *c.SolverIterations < 0 {
		return fmt.Errorf("solver_iterations must be non-negative, got %d", *c.SolverIterations)
	}
	if c.SmoothingWindow != nil {
		if w := *c.SmoothingWindow; w < 1 || w%2 == 0 {
			return fmt.Errorf("smoothing_window must be a positive odd integer, got %d", w)
		}
	}
	if c.BlendRatio != nil {
		if r := *c.BlendRatio; r < 0 || r > 1 {
			return fmt.Errorf("blend_ratio must be between 0 and 1, got %f", r)
		}
	}
	if c.CompareWindow != nil && *c.CompareWindow < 0 {
		return fmt.Errorf("compare_window must be non-negative, got %d", *c.CompareWindow)
	}
	return nil
}

// ApplyPipeline overlays the set pipeline fields onto base and returns
// the result.
func (c *TuningConfig) ApplyPipeline(base mocap.PipelineConfig) mocap.PipelineConfig {
	if c.FillPasses != nil {
		base.FillPasses = *c.FillPasses
	}
	if c.SolverIterations != nil {
		base.SolverIterations = *c.SolverIterations
	}
	if c.SmoothingWindow != nil {
		base.SmoothingWindow = *c.SmoothingWindow
	}
	return base
}

// GetBlendRatio returns the blend_ratio value or the default.
func (c *TuningConfig) GetBlendRatio() float64 {
	if c.BlendRatio == nil {
		return 0.5 // default: equal trust in both sources
	}
	return *c.BlendRatio
}

// GetCompareWindow returns the compare_window value or the default.
func (c *TuningConfig) GetCompareWindow() int {
	if c.CompareWindow == nil {
		return 30 // default: one second of overlap at 30fps
	}
	return *c.CompareWindow
}
