package config

// OutputConfig holds settings for written games and positions.
type OutputConfig struct {
	// LineLength is the maximum length of a movetext line
	LineLength int `yaml:"line_length"`

	// JSON selects JSON instead of text output
	JSON bool `yaml:"json"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		LineLength: 80,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.LineLength < 0 {
		return invalid("line length %d is negative", o.LineLength)
	}
	return nil
}
