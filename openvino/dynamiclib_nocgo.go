//go:build !cgo || windows

package openvino

import (
	"runtime"

	"github.com/pkg/errors"
)

// openLibrary always fails: loading the OpenVINO runtime requires cgo and dlopen.
func openLibrary(libPath string) (nativeAPI, error) {
	return nil, errors.Errorf("goopenvino built without cgo support or for an unsupported OS (%s/%s): can't load %q",
		runtime.GOOS, runtime.GOARCH, libPath)
}
