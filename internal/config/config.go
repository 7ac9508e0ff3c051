// Package config loads optional run settings from vdir.yaml and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/vdir/pkg/vdir"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override the config file.
const (
	EnvOutputDir = "VDIR_OUTPUT_DIR"
	EnvVerbose   = "VDIR_VERBOSE"
)

type OutputConfig struct {
	// Dir is where generated output names are placed. Explicit output
	// paths given on the command line are used as-is.
	Dir     string `yaml:"dir,omitempty"`
	Prefix  string `yaml:"prefix,omitempty"`
	Console *bool  `yaml:"console,omitempty"`
}

type Config struct {
	Output  OutputConfig `yaml:"output"`
	Verbose bool         `yaml:"verbose"`
}

// Default returns the settings used when no vdir.yaml exists.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Prefix: vdir.DefaultOutputPrefix,
		},
	}
}

// ConsoleEnabled reports whether result lines are mirrored to stdout.
func (c *Config) ConsoleEnabled() bool {
	return c.Output.Console == nil || *c.Output.Console
}

// GeneratedOutputPath names the output file for a run that was not given one.
func (c *Config) GeneratedOutputPath(jobID int64) string {
	prefix := c.Output.Prefix
	if prefix == "" {
		prefix = vdir.DefaultOutputPrefix
	}
	name := fmt.Sprintf("%s%d%s", prefix, jobID, vdir.DefaultOutputExtension)
	if c.Output.Dir == "" {
		return name
	}
	return filepath.Join(c.Output.Dir, name)
}

// Load reads vdir.yaml from dir. Fields absent from the file keep their
// Default values.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, vdir.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from environment variables found by lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		cfg.Output.Dir = v
	}
	if v, ok := lookup(EnvVerbose); ok && v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q is not a boolean", EnvVerbose, v)
		}
		cfg.Verbose = verbose
	}
	return nil
}

// Resolve builds the effective configuration: defaults, then vdir.yaml from
// dir if present, then environment overrides. Every failure wraps
// vdir.ErrInvalidConfig.
func Resolve(dir string, lookup func(string) (string, bool)) (*Config, error) {
	cfg, err := Load(dir)
	switch {
	case errors.Is(err, ErrConfigNotFound):
		cfg = Default()
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %v", vdir.ErrInvalidConfig, vdir.ConfigFileName, err)
	}

	if err := ApplyEnv(cfg, lookup); err != nil {
		return nil, fmt.Errorf("%w: %v", vdir.ErrInvalidConfig, err)
	}
	return cfg, nil
}
