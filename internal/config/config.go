// Package config loads run settings from an optional YAML file and validates
// them against an embedded CUE schema.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/arrayproc/internal/sequence"
)

//go:embed schema.cue
var schemaCUE string

// Config holds the settings of one run.
type Config struct {
	// Lang selects the message catalog ("en" or "ru").
	Lang string `yaml:"lang" json:"lang"`

	// MaxAttempts bounds re-prompting per question. 0 retries indefinitely.
	MaxAttempts int `yaml:"max_attempts" json:"max_attempts"`

	// MaxSize is the largest array that may be allocated.
	MaxSize int `yaml:"max_size" json:"max_size"`

	// Seed seeds random fill. 0 picks a fresh seed per run.
	Seed int64 `yaml:"seed" json:"seed"`

	// Random is the default range for non-interactive random fill.
	Random Range `yaml:"random" json:"random"`
}

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Lang:        "en",
		MaxAttempts: 0,
		MaxSize:     sequence.DefaultLimit,
		Seed:        0,
		Random:      Range{Min: -100, Max: 100},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks cfg against the CUE schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	v := def.Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return firstCUEError(err)
	}
	return nil
}

// firstCUEError reduces a CUE error list to its first entry.
func firstCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	return errs[0]
}
