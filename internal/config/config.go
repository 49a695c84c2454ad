// Package config loads the run configuration of the ndstat driver from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/ndcore/internal/parallel"
	"github.com/born-ml/ndcore/internal/tensor"
)

// Run is the top-level run configuration.
type Run struct {
	Shape    []int    `yaml:"shape"`
	Seed     int64    `yaml:"seed"` // 0 uses math/rand's global source
	Parallel Parallel `yaml:"parallel"`
}

// Parallel mirrors parallel.Config for YAML.
type Parallel struct {
	Enabled  bool `yaml:"enabled"`
	Workers  int  `yaml:"workers"`
	MinChunk int  `yaml:"min_chunk"`
}

// Default returns the configuration used when no file is given:
// a 100x100 tensor, unseeded, with parallel.DefaultConfig().
func Default() Run {
	p := parallel.DefaultConfig()
	return Run{
		Shape: []int{100, 100},
		Parallel: Parallel{
			Enabled:  p.Enabled,
			Workers:  p.NumWorkers,
			MinChunk: p.MinChunkSize,
		},
	}
}

// Validate checks the shape and the parallel settings.
func (r Run) Validate() error {
	if err := tensor.Shape(r.Shape).Validate(); err != nil {
		return fmt.Errorf("shape: %w", err)
	}
	if r.Parallel.Workers < 0 {
		return fmt.Errorf("parallel.workers must be >= 0, got %d", r.Parallel.Workers)
	}
	if r.Parallel.MinChunk < 0 {
		return fmt.Errorf("parallel.min_chunk must be >= 0, got %d", r.Parallel.MinChunk)
	}
	return nil
}

// ParallelConfig converts the parallel section for the CPU backend.
func (r Run) ParallelConfig() parallel.Config {
	return parallel.Config{
		Enabled:      r.Parallel.Enabled,
		NumWorkers:   r.Parallel.Workers,
		MinChunkSize: r.Parallel.MinChunk,
	}
}

// Parse decodes YAML on top of Default(). Keys absent from data keep their
// default; unknown keys are rejected. Empty input yields Default().
func Parse(data []byte) (Run, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Run{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Run{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Run) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
