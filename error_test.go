package lexsimd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/coregx/lexsimd/multitag"
	"github.com/coregx/lexsimd/result"
	"github.com/coregx/lexsimd/simd"
)

// TestConfigErrorPrefix verifies config errors use the "lexsimd:" prefix.
func TestConfigErrorPrefix(t *testing.T) {
	config := DefaultConfig()
	config.Width = 64

	_, err := New(config)
	require.Error(t, err, "expected error for invalid config")
	assert.Contains(t, err.Error(), "lexsimd: invalid config: Width:")

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Width", cfgErr.Field)
}

// TestMustNewPanic verifies MustNew panics with the *ConfigError.
func TestMustNewPanic(t *testing.T) {
	var got any
	func() {
		defer func() { got = recover() }()
		MustNew(Config{Strategy: Strategy(42), Width: simd.Width32})
	}()

	err, ok := got.(*ConfigError)
	require.True(t, ok, "MustNew panic = %#v, want *ConfigError", got)
	assert.Equal(t, "Strategy", err.Field)
}

// TestMustCompilePanicFormat verifies the candidate set panic message.
func TestMustCompilePanicFormat(t *testing.T) {
	e := MustNew(DefaultConfig())

	var panicMsg string
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicMsg = r.(string)
			}
		}()
		e.MustCompile([]byte("Accept"), nil)
	}()

	assert.Regexp(t, `^multitag: Compile: `, panicMsg)
	assert.Contains(t, panicMsg, "invalid candidate 1")
}

// TestCompileErrorKinds verifies candidate errors wrap the protocol sentinel.
func TestCompileErrorKinds(t *testing.T) {
	e := MustNew(Config{Strategy: Scalar, Width: simd.Width16})

	_, err := e.Compile([]byte("Content-Type"), []byte("Content-Length"))
	require.ErrorIs(t, err, result.ErrInvalidCandidateSet)
	var capErr *multitag.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 26, capErr.Total)
	assert.Equal(t, simd.Width16, capErr.Width)

	_, err = e.Compile([]byte("GET"), nil)
	require.ErrorIs(t, err, result.ErrInvalidCandidateSet)
	require.ErrorIs(t, err, multitag.ErrEmptyCandidate)
	errs := multierr.Errors(err)
	require.Len(t, errs, 1)
	var candErr *multitag.CandidateError
	require.True(t, errors.As(errs[0], &candErr), "got %T", errs[0])
	assert.Equal(t, 1, candErr.Index)
}
