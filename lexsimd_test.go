package lexsimd

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/coregx/lexsimd/multitag"
	"github.com/coregx/lexsimd/result"
	"github.com/coregx/lexsimd/scan"
	"github.com/coregx/lexsimd/simd"
)

func engines(t testing.TB) []*Engine {
	t.Helper()
	var out []*Engine
	for _, s := range []Strategy{Auto, Reference, Scalar, Vector} {
		e, err := New(Config{Strategy: s, Width: simd.Width32})
		require.NoError(t, err)
		out = append(out, e)
	}
	return out
}

func TestNewResolvesStrategy(t *testing.T) {
	hw := simd.Accelerated()

	auto := MustNew(DefaultConfig())
	if hw != nil {
		assert.Equal(t, Vector, auto.Strategy())
		assert.Equal(t, hw.Name(), auto.Kernel().Name())
	} else {
		assert.Equal(t, Scalar, auto.Strategy())
		assert.Equal(t, "portable", auto.Kernel().Name())
	}

	ref := MustNew(Config{Strategy: Reference, Width: simd.Width16})
	assert.Equal(t, Reference, ref.Strategy())
	assert.Nil(t, ref.Kernel())
	assert.Equal(t, simd.Width16, ref.Width())

	scalar := MustNew(Config{Strategy: Scalar, Width: simd.Width32})
	assert.Equal(t, "portable", scalar.Kernel().Name())

	vector := MustNew(Config{Strategy: Vector, Width: simd.Width32})
	assert.Equal(t, Vector, vector.Strategy())
	assert.Equal(t, simd.Default().Name(), vector.Kernel().Name())
}

func TestNewLogsResolution(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := DefaultConfig()
	cfg.Strategy = Vector
	cfg.Logger = zap.New(core)

	e, err := New(cfg)
	require.NoError(t, err)

	ready := logs.FilterMessage("lexsimd engine ready").All()
	require.Len(t, ready, 1)
	fields := ready[0].ContextMap()
	assert.Equal(t, "vector", fields["requested"])
	assert.Equal(t, "vector", fields["strategy"])
	assert.Equal(t, e.Kernel().Name(), fields["kernel"])
	assert.Equal(t, int64(32), fields["width"])

	warned := logs.FilterLevelExact(zapcore.WarnLevel).Len()
	if simd.Accelerated() == nil {
		assert.Equal(t, 1, warned)
	} else {
		assert.Zero(t, warned)
	}
}

func TestEngineBasicOutcomes(t *testing.T) {
	isA := func(c byte) bool { return c == 'a' }
	for _, e := range engines(t) {
		name := e.Strategy().String()

		out := e.While1([]byte("aaaa b"), isA)
		require.True(t, out.IsDone(), name)
		assert.Equal(t, "aaaa", string(out.Value))
		assert.Equal(t, " b", string(out.Rest))
		assert.True(t, e.While1([]byte("bcd"), isA).IsError(), name)
		assert.True(t, e.While1([]byte("aaaa"), isA).IsIncomplete(), name)

		tg := e.Tag([]byte("ABCD"), []byte("ABCDABCDABCDABCDabcd"))
		require.True(t, tg.IsDone(), name)
		assert.Equal(t, "ABCDABCDABCDabcd", string(tg.Rest))
		assert.Equal(t, "ABCD", string(tg.Value))

		tg = e.Tag([]byte("ABCD"), []byte("ABC"))
		n, known := tg.Needed()
		assert.True(t, tg.IsIncomplete() && known && n == 1, "%s: %s", name, tg)
	}
}

func TestEngineClassify(t *testing.T) {
	request := []byte("POST /submit HTTP/1.1\r\nHost: example.com\r\n\r\n")
	for _, e := range engines(t) {
		methods := e.MustCompile([]byte("GET"), []byte("POST"), []byte("PUT"), []byte("DELETE"), []byte("HEAD"))
		out := e.Classify(methods, request)
		require.True(t, out.IsDone(), "%s: %s", e.Strategy(), out)
		assert.Equal(t, 1, out.Value)
		assert.Equal(t, " /submit HTTP/1.1\r\nHost: example.com\r\n\r\n", string(out.Rest))

		target := e.Ranges1(out.Rest[1:], scan.TokenRanges)
		require.True(t, target.IsDone())
		assert.Equal(t, "/submit", string(target.Value))

		version := e.Tag([]byte("HTTP/1.1"), target.Rest[1:])
		require.True(t, version.IsDone())
		assert.Equal(t, "\r\nHost: example.com\r\n\r\n", string(version.Rest))

		assert.True(t, e.Classify(methods, request[:10]).IsIncomplete())
	}
}

// TestStrategiesAgree runs every engine on the same random inputs and
// requires outcomes identical to the Reference engine.
func TestStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	all := engines(t)
	ref := MustNew(Config{Strategy: Reference, Width: simd.Width32})

	tables := multitag.MustCompile(simd.Width32,
		[]byte("Acce"), []byte("Auth"), []byte("Cont"), []byte("Date"),
		[]byte("Host"), []byte("If-"), []byte("User-"))
	headers := []string{"Accept", "Authorization", "Content-Type", "Date", "Host", "If-Match", "User-Agent", "Via"}
	alphabet := []byte("aA0 :-/\t\r\n\x7F\x80")

	for iter := 0; iter < 3000; iter++ {
		input := []byte(headers[rng.IntN(len(headers))])
		for n := rng.IntN(80); n > 0; n-- {
			input = append(input, alphabet[rng.IntN(len(alphabet))])
		}
		input = input[:rng.IntN(len(input)+1)]
		tg := input[:rng.IntN(len(input)+1)]
		if len(tg) > 0 && rng.IntN(3) == 0 {
			tg = append([]byte(nil), tg...)
			tg[rng.IntN(len(tg))] ^= 1
		}

		wantClass := ref.Classify(tables, input)
		wantTag := ref.Tag(tg, input)
		wantWhile1 := ref.While1(input, scan.IsAlphanumeric)
		wantWhile := ref.While(input, scan.IsAlphanumeric)
		wantRanges1 := ref.Ranges1(input, scan.HeaderValueRanges)
		wantRanges := ref.Ranges(input, scan.TokenRanges)

		for _, e := range all {
			msg := []any{"%s input=%q", e.Strategy(), input}
			require.Equal(t, wantClass, e.Classify(tables, input), msg...)
			require.Equal(t, wantTag, e.Tag(tg, input), msg...)
			require.Equal(t, wantWhile1, e.While1(input, scan.IsAlphanumeric), msg...)
			require.Equal(t, wantWhile, e.While(input, scan.IsAlphanumeric), msg...)
			require.Equal(t, wantRanges1, e.Ranges1(input, scan.HeaderValueRanges), msg...)
			require.Equal(t, wantRanges, e.Ranges(input, scan.TokenRanges), msg...)
		}
	}
}

func TestIncompleteIsNotAnError(t *testing.T) {
	for _, e := range engines(t) {
		out := e.Ranges1([]byte("token"), scan.TokenRanges)
		require.Equal(t, result.Incomplete, out.Status)
		assert.NoError(t, out.Err())
	}
}

func BenchmarkEngineClassify(b *testing.B) {
	request := []byte("DELETE /api/v1/items/42 HTTP/1.1\r\n")
	for _, e := range engines(b) {
		methods := e.MustCompile([]byte("GET"), []byte("POST"), []byte("PUT"), []byte("DELETE"), []byte("HEAD"))
		b.Run(e.Strategy().String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = e.Classify(methods, request)
			}
		})
	}
}
