/*
config.go holds the tunable knobs for the reference CLI and the demo
sampler. Every field has a usable zero-value-adjacent default, so a config
file is never required — LoadConfig falls back to DefaultConfig() whenever
the path is empty or the file does not exist.
*/

package chego

import (
	"os"

	"gopkg.in/yaml.v3"
)

// GlyphSet selects whether the renderer uses Unicode piece glyphs or plain
// ASCII letters.
type GlyphSet string

const (
	GlyphsUnicode GlyphSet = "unicode"
	GlyphsASCII   GlyphSet = "ascii"
)

// Config controls the demo sampler and the reference CLI. It is never read
// from the environment — per this engine's external-interfaces contract,
// configuration is file- or default-driven only.
type Config struct {
	MaxPlies int      `yaml:"max_plies"`
	Seed     uint64   `yaml:"seed"`
	Glyphs   GlyphSet `yaml:"glyphs"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() Config {
	return Config{
		MaxPlies: 200,
		Seed:     1,
		Glyphs:   GlyphsUnicode,
	}
}

// LoadConfig reads an optional YAML file at path and overlays its fields
// onto DefaultConfig(). A missing path (empty string or nonexistent file)
// is not an error: LoadConfig returns DefaultConfig() unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
