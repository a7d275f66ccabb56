// SPDX-License-Identifier: MIT

package calc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/symatrix/term"
	"gopkg.in/yaml.v3"
)

// ErrConfig is returned for a config file that parses but is not usable.
var ErrConfig = errors.New("calc: invalid config")

// Config is the calculator configuration, usually read from YAML:
//
//	prompt: "input: "
//	banner: true
//	values:
//	  x: 7
//	  y: -2
type Config struct {
	Prompt string         `yaml:"prompt"`
	Banner bool           `yaml:"banner"`
	Values map[string]int `yaml:"values"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{Prompt: "input: ", Banner: true}
}

// LoadConfig reads path and overlays it on DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every value key is a single ASCII letter.
func (c Config) Validate() error {
	for name := range c.Values {
		if len(name) != 1 || !term.IsVarName(name[0]) {
			return fmt.Errorf("value key %q: %w", name, ErrConfig)
		}
	}

	return nil
}

// Valuation converts Values into a term.Values.
func (c Config) Valuation() (term.Values, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	vs := make(term.Values, len(c.Values))
	for name, x := range c.Values {
		vs[name[0]] = x
	}

	return vs, nil
}

// Encode writes c as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return enc.Close()
}
