package lexsimd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/coregx/lexsimd/simd"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvStrategy = "LEXSIMD_STRATEGY"
	EnvWidth    = "LEXSIMD_WIDTH"
)

// Strategy selects which implementation of every matcher an Engine runs.
type Strategy int

const (
	// Auto picks Vector when the CPU has the accelerated kernel and Scalar
	// otherwise.
	Auto Strategy = iota

	// Reference runs the naive byte-by-byte implementations.
	Reference

	// Scalar runs the unrolled scalar matchers and classifies on the
	// portable lane model.
	Scalar

	// Vector runs every kernel-driven path, on the accelerated kernel when
	// available and on the portable kernel otherwise.
	Vector
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Reference:
		return "reference"
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses a strategy name, ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "reference", "naive":
		return Reference, nil
	case "scalar":
		return Scalar, nil
	case "vector", "simd":
		return Vector, nil
	default:
		return Auto, &ConfigError{Field: "Strategy", Message: fmt.Sprintf("unknown strategy %q", name)}
	}
}

// Config controls Engine construction.
//
// Example:
//
//	config := lexsimd.DefaultConfig()
//	config.Strategy = lexsimd.Reference // differential testing
//	engine, err := lexsimd.New(config)
type Config struct {
	// Strategy selects the matcher implementations.
	// Default: Auto
	Strategy Strategy

	// Width is the register width candidate tables are compiled for.
	// Width32 fits up to 32 candidate bytes; Width16 half of that.
	// Default: simd.Width32
	Width simd.Width

	// Logger receives construction-time diagnostics. Matching never logs.
	// Default: zap.NewNop()
	Logger *zap.Logger
}

// DefaultConfig returns the configuration used by New when nothing is
// customized.
func DefaultConfig() Config {
	return Config{
		Strategy: Auto,
		Width:    simd.Width32,
		Logger:   zap.NewNop(),
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Strategy < Auto || c.Strategy > Vector {
		return &ConfigError{
			Field:   "Strategy",
			Message: fmt.Sprintf("unknown strategy %d", int(c.Strategy)),
		}
	}
	if !c.Width.Valid() {
		return &ConfigError{
			Field:   "Width",
			Message: fmt.Sprintf("must be %d or %d, got %d", simd.Width16, simd.Width32, int(c.Width)),
		}
	}
	return nil
}

// ConfigFromEnv returns DefaultConfig overridden by LEXSIMD_STRATEGY and
// LEXSIMD_WIDTH when they are set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if v := os.Getenv(EnvStrategy); v != "" {
		s, err := ParseStrategy(v)
		if err != nil {
			return cfg, err
		}
		cfg.Strategy = s
	}
	if v := os.Getenv(EnvWidth); v != "" {
		w, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, &ConfigError{Field: "Width", Message: fmt.Sprintf("%s=%q is not an integer", EnvWidth, v)}
		}
		cfg.Width = simd.Width(w)
	}
	return cfg, cfg.Validate()
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "lexsimd: invalid config: " + e.Field + ": " + e.Message
}
