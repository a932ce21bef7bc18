package config

import "runtime"

// PerftConfig holds settings for move tree counting.
type PerftConfig struct {
	// Depth in plies; 0 disables counting
	Depth int `yaml:"depth"`

	// Workers is the number of goroutines searching root moves
	Workers int `yaml:"workers"`

	// Divide prints the count below each root move
	Divide bool `yaml:"divide"`

	// Verify compares the counts with the reference generator
	Verify bool `yaml:"verify"`

	// Cache bounds the subtree count cache in entries (0 = no cache)
	Cache int `yaml:"cache"`
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return invalid("perft depth %d is negative", p.Depth)
	}
	if p.Cache < 0 {
		return invalid("perft cache %d is negative", p.Cache)
	}
	if p.Workers < 1 {
		return invalid("perft workers %d, need at least 1", p.Workers)
	}
	return nil
}
