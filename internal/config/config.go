package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/VinithaChowdary/Shape-Detector/internal/detect"
)

// Config holds the application configuration
type Config struct {
	Detector DetectorConfig `json:"detector"`
	Eval     EvalConfig     `json:"eval"`
	Render   RenderConfig   `json:"render"`
}

// DetectorConfig holds the detection pipeline parameters
type DetectorConfig struct {
	LuminanceThreshold float64 `json:"luminance_threshold"`
	MinArea            int     `json:"min_area"`
}

// EvalConfig holds configuration for the evaluation harness
type EvalConfig struct {
	GroundTruth string `json:"ground_truth"`
	ImageDir    string `json:"image_dir"`
	Workers     int    `json:"workers"`
}

// RenderConfig holds configuration for annotated output
type RenderConfig struct {
	Scale float64 `json:"scale"`
}

// Default returns a configuration with the tuned detection defaults
func Default() *Config {
	opts := detect.DefaultOptions()
	return &Config{
		Detector: DetectorConfig{
			LuminanceThreshold: opts.LuminanceThreshold,
			MinArea:            opts.MinArea,
		},
		Eval: EvalConfig{
			GroundTruth: "testdata/expected.yaml",
			ImageDir:    "testdata",
			Workers:     4,
		},
		Render: RenderConfig{
			Scale: 1.0,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Detector.LuminanceThreshold <= 0 || c.Detector.LuminanceThreshold > 255 {
		return fmt.Errorf("detector.luminance_threshold must be in (0, 255]")
	}

	if c.Detector.MinArea < 1 {
		return fmt.Errorf("detector.min_area must be positive")
	}

	if c.Eval.Workers < 0 {
		return fmt.Errorf("eval.workers must not be negative")
	}

	if c.Render.Scale <= 0 {
		return fmt.Errorf("render.scale must be positive")
	}

	return nil
}

// DetectorOptions converts the detector section into pipeline options
func (c *Config) DetectorOptions() detect.Options {
	return detect.Options{
		LuminanceThreshold: c.Detector.LuminanceThreshold,
		MinArea:            c.Detector.MinArea,
	}
}
