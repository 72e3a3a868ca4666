//go:build !linux && !darwin

package openvino

// SuppressNativeLogging simply calls fn: suppressing the native logging is only supported on linux and darwin.
func SuppressNativeLogging(fn func()) {
	fn()
}
