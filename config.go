package armature

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config collects the import settings for a character.
type Config struct {
	// FrameRate divides raw keyframe durations into seconds. Zero means
	// DefaultFrameRate.
	FrameRate float64 `yaml:"frameRate,omitempty"`
	// Animation names the clip to compile. Empty selects the first one.
	Animation string `yaml:"animation,omitempty"`
	// Debug turns on debug logging for the scene the character is played on.
	Debug bool `yaml:"debug,omitempty"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{FrameRate: DefaultFrameRate}
}

// Compile returns the compiler settings for c.
func (c Config) Compile() CompileConfig {
	return CompileConfig{FrameRate: c.FrameRate}
}

// ReadConfig decodes a YAML config from r on top of DefaultConfig. Unknown
// keys are rejected. An empty document yields the defaults.
func ReadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrapf(err, "Failed to unmarshal config yaml")
	}
	if cfg.FrameRate < 0 {
		return Config{}, errors.Errorf("config: frameRate %v must not be negative", cfg.FrameRate)
	}
	return cfg, nil
}

// WriteConfig encodes cfg as YAML.
func WriteConfig(w io.Writer, cfg Config) error {
	var buffer bytes.Buffer
	enc := yaml.NewEncoder(&buffer)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrapf(err, "Failed to marshal config yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrapf(err, "Failed to close yaml encoder")
	}
	_, err := w.Write(buffer.Bytes())
	return err
}
