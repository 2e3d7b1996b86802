// SPDX-License-Identifier: MIT

package calc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mat2x2/mat2x2"
)

// OutputMode selects how a Result is rendered.
type OutputMode string

const (
	// OutputBox renders matrices in the three-line boxed layout.
	OutputBox OutputMode = "box"
	// OutputPlain renders matrices as "a b c d" on one line.
	OutputPlain OutputMode = "plain"
)

// DefaultOutput is used when neither the config file nor a flag sets one.
const DefaultOutput = OutputBox

// Config is the YAML configuration of the mat2x2 command.
//
// Example:
//
//	output: plain
//	matrices:
//	  A: [1, 2, 3, 4]
//	  R: [0, -1, 1, 0]
type Config struct {
	// Output is "box" (default) or "plain".
	Output OutputMode `yaml:"output"`

	// Matrices maps operand names to their elements in a, b, c, d order.
	Matrices map[string][]float64 `yaml:"matrices"`
}

// DefaultConfig returns an empty table with box output.
func DefaultConfig() Config {
	return Config{Output: DefaultOutput, Matrices: map[string][]float64{}}
}

// LoadConfig reads and validates the YAML file at path. There is no
// discovery: an empty path yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes YAML config bytes. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing: %w", err)
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Matrices == nil {
		cfg.Matrices = map[string][]float64{}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the output mode and that every matrix has four elements.
func (c Config) Validate() error {
	if err := c.Output.validate(); err != nil {
		return err
	}
	for name, elems := range c.Matrices {
		if len(elems) != 4 {
			return fmt.Errorf("%w: matrix %q has %d elements, want 4", ErrBadConfig, name, len(elems))
		}
		if isLiteral(name) {
			return fmt.Errorf("%w: matrix name %q looks like a literal", ErrBadConfig, name)
		}
	}

	return nil
}

func (m OutputMode) validate() error {
	switch m {
	case OutputBox, OutputPlain:
		return nil
	default:
		return fmt.Errorf("%w: output %q (want %q or %q)", ErrBadConfig, m, OutputBox, OutputPlain)
	}
}

// matrices converts the element table into Mat2x2 values.
func (c Config) matrices() map[string]mat2x2.Mat2x2 {
	out := make(map[string]mat2x2.Mat2x2, len(c.Matrices))
	for name, e := range c.Matrices {
		out[name] = mat2x2.New(e[0], e[1], e[2], e[3])
	}

	return out
}
