package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/checkmate-go/internal/errors"
)

// Load reads a YAML configuration file over the defaults and validates it.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	defer f.Close()

	cfg, err := LoadReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// LoadReader is Load for an already open stream. Unknown keys are rejected.
func LoadReader(r io.Reader) (*Config, error) {
	cfg := NewConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, invalid("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal returns the YAML form of the file-backed settings.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
