//go:build cgo && linux

package openvino

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// findLibC returns the path to the C library, which is always loadable but doesn't export the OpenVINO API.
func findLibC(t *testing.T) string {
	for _, pattern := range []string{"/lib/*-linux-gnu/libc.so.6", "/lib64/libc.so.6", "/usr/lib64/libc.so.6",
		"/usr/lib/*-linux-gnu/libc.so.6", "/usr/lib/libc.so.6", "/lib/libc.so.6", "/lib/ld-musl-*.so.1"} {
		matches, _ := filepath.Glob(pattern)
		if len(matches) > 0 {
			return matches[0]
		}
	}
	t.Skip("C library not found in the usual paths")
	return ""
}

func TestOpenLibrary_MissingSymbols(t *testing.T) {
	libC := findLibC(t)
	_, err := openLibrary(libC)
	require.Error(t, err)
	require.ErrorContains(t, err, "doesn't export the OpenVINO C API symbols")
	require.ErrorContains(t, err, "ie_core_create")
	require.ErrorContains(t, err, "ie_blob_free")

	// Through the loader it becomes a SystemFailure, and it is not cached.
	loader := &runtimeLoader{
		find: func() (string, bool) { return libC, true },
		open: openLibrary,
	}
	for range 2 {
		_, err = loader.load()
		var loadingErr *LoadingError
		require.True(t, errors.As(err, &loadingErr))
		require.Equal(t, SystemFailure, loadingErr.Kind)
		require.Equal(t, filepath.Clean(libC), loadingErr.Path)
		require.ErrorContains(t, err, "ie_core_create")
		require.True(t, IsSetupError(err))
	}
	require.Equal(t, "", loader.loadedPath())
}

func TestOpenLibrary_InvalidPaths(t *testing.T) {
	dir := t.TempDir()
	_, err := openLibrary(dir)
	require.ErrorContains(t, err, "is a directory")
	_, err = openLibrary(filepath.Join(dir, "libopenvino_c.so"))
	require.ErrorContains(t, err, "failed to stat")
}
