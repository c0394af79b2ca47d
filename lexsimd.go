// Package lexsimd provides hardware-accelerated byte-matching primitives for
// the lexical layer of streaming parsers.
//
// Three matchers are provided, each in its own package and each returning the
// tri-state result.Outcome (Done, Error, Incomplete):
//   - tag: does the buffer start with a fixed byte string
//   - scan: the longest prefix whose bytes belong to a byte class
//   - multitag: which of up to 32 bytes' worth of short alternatives the
//     buffer starts with, decided in one vector pass
//
// Every matcher exists in several implementations: a naive reference, an
// unrolled scalar one and a kernel-driven one running on either the portable
// lane model or AVX2/SSE4.2 assembly. An Engine binds one implementation of
// each, chosen by Config.Strategy:
//
//	engine, err := lexsimd.New(lexsimd.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	methods := engine.MustCompile([]byte("GET"), []byte("POST"), []byte("PUT"))
//	out := engine.Classify(methods, request)
//	switch out.Status {
//	case result.Done:       // out.Value is the method id, out.Rest follows it
//	case result.Incomplete: // read more, retry from the same position
//	case result.Error:      // not a known method
//	}
//
// All strategies return identical outcomes; they differ only in speed.
package lexsimd

import (
	"go.uber.org/zap"

	"github.com/coregx/lexsimd/multitag"
	"github.com/coregx/lexsimd/result"
	"github.com/coregx/lexsimd/scan"
	"github.com/coregx/lexsimd/simd"
	"github.com/coregx/lexsimd/tag"
)

// Engine dispatches every matcher to the implementation chosen by its
// strategy.
//
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	strategy Strategy
	kernel   simd.Kernel
	width    simd.Width
}

// New resolves cfg into an Engine.
//
// Auto becomes Vector when simd.Accelerated is available and Scalar
// otherwise. Vector without hardware support runs on the portable kernel.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	hw := simd.Accelerated()
	e := &Engine{strategy: cfg.Strategy, width: cfg.Width}
	switch cfg.Strategy {
	case Auto:
		if hw != nil {
			e.strategy, e.kernel = Vector, hw
		} else {
			e.strategy, e.kernel = Scalar, simd.Portable()
		}
	case Reference:
	case Scalar:
		e.kernel = simd.Portable()
	case Vector:
		e.kernel = hw
		if hw == nil {
			log.Warn("accelerated kernel unavailable, vector strategy runs on the portable kernel")
			e.kernel = simd.Portable()
		}
	}

	log.Debug("lexsimd engine ready",
		zap.Stringer("requested", cfg.Strategy),
		zap.Stringer("strategy", e.strategy),
		zap.String("kernel", kernelName(e.kernel)),
		zap.Bool("hardware", hw != nil),
		zap.Int("width", int(e.width)),
	)
	return e, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(cfg Config) *Engine {
	e, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return e
}

func kernelName(k simd.Kernel) string {
	if k == nil {
		return "none"
	}
	return k.Name()
}

// Strategy returns the resolved strategy. It is never Auto.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Kernel returns the kernel used by vector paths, or nil for Reference.
func (e *Engine) Kernel() simd.Kernel {
	return e.kernel
}

// Width returns the register width candidate tables are compiled for.
func (e *Engine) Width() simd.Width {
	return e.width
}

// Compile builds classifier tables for candidates at the engine's width.
func (e *Engine) Compile(candidates ...[]byte) (*multitag.Tables, error) {
	return multitag.Compile(e.width, candidates...)
}

// MustCompile is like Compile but panics on an invalid candidate set.
func (e *Engine) MustCompile(candidates ...[]byte) *multitag.Tables {
	return multitag.MustCompile(e.width, candidates...)
}

// Classify reports which candidate of t the window starts with.
func (e *Engine) Classify(t *multitag.Tables, window []byte) result.Outcome[int] {
	if e.strategy == Reference {
		return t.ClassifyReference(window)
	}
	return t.Classify(e.kernel, window)
}

// Tag matches a fixed byte string at the start of input.
func (e *Engine) Tag(tg, input []byte) result.Outcome[[]byte] {
	switch e.strategy {
	case Reference:
		return tag.MatchReference(tg, input)
	case Vector:
		return tag.MatchKernel(e.kernel, tg, input)
	default:
		return tag.Match(tg, input)
	}
}

// While1 returns the longest non-empty prefix of input satisfying pred.
// Arbitrary predicates have no vector form, so Vector scans like Scalar.
func (e *Engine) While1(input []byte, pred func(byte) bool) result.Outcome[[]byte] {
	if e.strategy == Reference {
		return scan.While1Reference(input, pred)
	}
	return scan.While1(input, pred)
}

// While returns the longest, possibly empty, prefix of input satisfying pred.
func (e *Engine) While(input []byte, pred func(byte) bool) result.Outcome[[]byte] {
	if e.strategy == Reference {
		return scan.WhileReference(input, pred)
	}
	return scan.While(input, pred)
}

// Ranges1 returns the longest non-empty prefix of input accepted by rs.
func (e *Engine) Ranges1(input []byte, rs *scan.RangeSet) result.Outcome[[]byte] {
	switch e.strategy {
	case Reference:
		return scan.While1Reference(input, rs.Accepts)
	case Vector:
		return scan.Ranges1(e.kernel, input, rs)
	default:
		return scan.Ranges1(nil, input, rs)
	}
}

// Ranges returns the longest, possibly empty, prefix of input accepted by rs.
func (e *Engine) Ranges(input []byte, rs *scan.RangeSet) result.Outcome[[]byte] {
	switch e.strategy {
	case Reference:
		return scan.WhileReference(input, rs.Accepts)
	case Vector:
		return scan.Ranges(e.kernel, input, rs)
	default:
		return scan.Ranges(nil, input, rs)
	}
}
