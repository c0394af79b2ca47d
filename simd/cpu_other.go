//go:build !amd64 || purego

package simd

// accelerated reports no hardware kernel on this platform or build.
func accelerated() Kernel {
	return nil
}
