package combi

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v2"
)

type (
	// configFile is the top-level structure of a configuration file.
	configFile struct {
		Retriers map[string]RetryConfig `json:"retriers" yaml:"retriers"`
	}

	// RetryConfig holds the decoded configuration of a single retrier.
	// Embed it in your own config struct for JSON or YAML unmarshaling,
	// then call [BuildParams] to obtain [RetryParams].
	RetryConfig struct {
		// Retries is the attempt budget.
		// Required. Example: 3.
		Retries *int `json:"retries,omitempty" yaml:"retries,omitempty"`
		// InitialWait is the wait after the first failed attempt.
		// Optional, defaults to 0. Parsed via time.ParseDuration.
		// Example: "100ms".
		InitialWait *string `json:"initial_wait,omitempty" yaml:"initial_wait,omitempty"`
		// Multiplier scales the wait after every attempt.
		// Optional, defaults to 1. Example: 2.
		Multiplier *float64 `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
		// MaxWait caps every wait.
		// Optional. Parsed via time.ParseDuration. Example: "5s".
		MaxWait *string `json:"max_wait,omitempty" yaml:"max_wait,omitempty"`
		// Backoff is the backoff strategy name.
		// Optional, defaults to "geometric". One of: "geometric",
		// "geometric_jitter", "constant", "linear".
		Backoff *string `json:"backoff,omitempty" yaml:"backoff,omitempty"`
	}
)

// LoadConfig reads a configuration file and stores one [RetryParams] per
// named retrier in a new [Registry]. Files ending in .yaml or .yml are
// decoded as YAML after environment variable expansion; anything else is
// decoded as JSON.
//
//	retriers:
//	  inventory:
//	    retries: 5
//	    initial_wait: 100ms
//	    multiplier: 2
func LoadConfig(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("combi: read config: %w", err)
	}

	var cfg configFile
	if err = decodeConfig(path, data, &cfg); err != nil {
		return nil, fmt.Errorf("combi: parse config: %w", err)
	}

	reg := NewRegistry()

	// Validate every entry so errors surface at load time.
	for name, rc := range cfg.Retriers {
		p, buildErr := BuildParams(&rc)
		if buildErr != nil {
			return nil, fmt.Errorf("combi: retrier %q: %w", name, buildErr)
		}

		reg.params[name] = p
	}

	return reg, nil
}

func decodeConfig(path string, data []byte, cfg *configFile) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg)
	default:
		return json.Unmarshal(data, cfg)
	}
}

// BuildParams converts a [RetryConfig] into validated [RetryParams]. Clock
// and Hooks are left unset.
func BuildParams(rc *RetryConfig) (RetryParams, error) {
	var p RetryParams

	if rc.Retries == nil {
		return p, fmt.Errorf("%w: retries is required", ErrInvalidConfig)
	}

	p.Retries = *rc.Retries
	p.Multiplier = 1

	if rc.Multiplier != nil {
		p.Multiplier = *rc.Multiplier
	}

	if rc.InitialWait != nil {
		d, err := time.ParseDuration(*rc.InitialWait)
		if err != nil {
			return p, fmt.Errorf("initial_wait: %w", err)
		}

		p.InitialWait = d
	}

	if rc.MaxWait != nil {
		d, err := time.ParseDuration(*rc.MaxWait)
		if err != nil {
			return p, fmt.Errorf("max_wait: %w", err)
		}

		p.MaxWait = d
	}

	if err := p.Validate(); err != nil {
		return p, err
	}

	if rc.Backoff != nil {
		strategy, err := parseBackoff(*rc.Backoff, p)
		if err != nil {
			return p, err
		}

		p.Backoff = strategy
	}

	return p, nil
}

// parseBackoff maps a strategy name to a [BackoffStrategy] built from the
// already parsed wait parameters.
//
//nolint:ireturn // returns interface by design for strategy pattern
func parseBackoff(name string, p RetryParams) (BackoffStrategy, error) {
	switch name {
	case "geometric":
		return GeometricBackoff(p.InitialWait, p.Multiplier), nil
	case "geometric_jitter":
		return JitterBackoff(GeometricBackoff(p.InitialWait, p.Multiplier)), nil
	case "constant":
		return ConstantBackoff(p.InitialWait), nil
	case "linear":
		return LinearBackoff(p.InitialWait), nil
	default:
		return nil, fmt.Errorf("%w: unknown backoff strategy: %q", ErrInvalidConfig, name)
	}
}
