package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/livefir/vdombench/internal/bench"
	"github.com/livefir/vdombench/internal/fixture"
)

// EnvConfigPath names the environment variable holding an optional config file path
const EnvConfigPath = "VDOMBENCH_CONFIG"

var validate = validator.New()

// Config represents the benchmark configuration
type Config struct {
	// Nodes is the number of leaves each component renders
	Nodes int `yaml:"nodes" validate:"min=0"`

	// Warmup is the number of discarded rounds
	Warmup int `yaml:"warmup" validate:"min=0"`

	// Iterations is the number of measured rounds
	Iterations int `yaml:"iterations" validate:"min=1"`

	// Verbose logs every measured sample and the renderer counters
	Verbose bool `yaml:"verbose,omitempty"`

	// Styled prints a table summary after the log lines
	Styled bool `yaml:"styled,omitempty"`
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Nodes:      fixture.DefaultNodes,
		Warmup:     bench.DefaultWarmup,
		Iterations: bench.DefaultIterations,
	}
}

// Validate checks the loop sizes
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s must be %s %s, got %v", fe.Field(), fe.Tag(), fe.Param(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Bench returns the runner loop sizes
func (c *Config) Bench() *bench.Config {
	return &bench.Config{
		Warmup:     c.Warmup,
		Iterations: c.Iterations,
		Verbose:    c.Verbose,
	}
}

// Load reads the configuration from path. An empty path or a missing file
// yields the default config; fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromEnv loads the file named by EnvConfigPath
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(EnvConfigPath))
}
