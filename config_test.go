package lexsimd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/lexsimd/simd"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, Auto, cfg.Strategy)
	assert.Equal(t, simd.Width32, cfg.Width)
	assert.NotNil(t, cfg.Logger)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{"default", DefaultConfig(), ""},
		{"width 16", Config{Strategy: Vector, Width: simd.Width16}, ""},
		{"nil logger", Config{Strategy: Reference, Width: simd.Width32}, ""},
		{"zero width", Config{}, "Width"},
		{"odd width", Config{Width: 24}, "Width"},
		{"negative strategy", Config{Strategy: -1, Width: simd.Width32}, "Strategy"},
		{"unknown strategy", Config{Strategy: Vector + 1, Width: simd.Width32}, "Strategy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "error = %v", err)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
		ok   bool
	}{
		{"", Auto, true},
		{"auto", Auto, true},
		{"Reference", Reference, true},
		{"naive", Reference, true},
		{" SCALAR ", Scalar, true},
		{"vector", Vector, true},
		{"simd", Vector, true},
		{"avx512", Auto, false},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestStrategyString(t *testing.T) {
	for _, s := range []Strategy{Auto, Reference, Scalar, Vector} {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv(EnvStrategy, "")
		t.Setenv(EnvWidth, "")
		cfg, err := ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, Auto, cfg.Strategy)
		assert.Equal(t, simd.Width32, cfg.Width)
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv(EnvStrategy, "reference")
		t.Setenv(EnvWidth, "16")
		cfg, err := ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, Reference, cfg.Strategy)
		assert.Equal(t, simd.Width16, cfg.Width)
	})

	t.Run("bad strategy", func(t *testing.T) {
		t.Setenv(EnvStrategy, "fastest")
		t.Setenv(EnvWidth, "")
		_, err := ConfigFromEnv()
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "Strategy", cfgErr.Field)
	})

	t.Run("bad width", func(t *testing.T) {
		t.Setenv(EnvStrategy, "")
		t.Setenv(EnvWidth, "wide")
		_, err := ConfigFromEnv()
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "Width", cfgErr.Field)
	})

	t.Run("unsupported width", func(t *testing.T) {
		t.Setenv(EnvStrategy, "")
		t.Setenv(EnvWidth, "64")
		_, err := ConfigFromEnv()
		assert.Error(t, err)
	})
}
