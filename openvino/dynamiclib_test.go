package openvino

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeLoader(t *testing.T) {
	api := newFakeAPI()
	var found bool
	var numOpens atomic.Int32
	var openErr error
	loader := &runtimeLoader{
		find: func() (string, bool) { return "/opt/openvino/lib/libopenvino_c.so", found },
		open: func(libPath string) (nativeAPI, error) {
			numOpens.Add(1)
			if openErr != nil {
				return nil, openErr
			}
			return api, nil
		},
	}

	// Library not found.
	_, err := loader.load()
	var loadingErr *LoadingError
	require.True(t, errors.As(err, &loadingErr))
	require.Equal(t, SystemFailure, loadingErr.Kind)
	require.ErrorContains(t, err, "OPENVINO_LIBRARY_PATH")
	require.Equal(t, int32(0), numOpens.Load())

	// Found but fails to load: failures are not cached.
	found = true
	openErr = errors.New("undefined symbol: ie_core_create")
	_, err = loader.load()
	require.True(t, errors.As(err, &loadingErr))
	require.Equal(t, SystemFailure, loadingErr.Kind)
	require.Equal(t, "/opt/openvino/lib/libopenvino_c.so", loadingErr.Path)
	require.ErrorContains(t, err, "undefined symbol")
	require.Equal(t, "", loader.loadedPath())

	// Succeeds, and it's loaded only once from then on, even concurrently.
	openErr = nil
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := loader.load()
			assert.NoError(t, err)
			assert.Same(t, api, got)
		}()
	}
	wg.Wait()
	require.Equal(t, int32(2), numOpens.Load())
	require.Equal(t, "/opt/openvino/lib/libopenvino_c.so", loader.loadedPath())

	// Requests for a different path are ignored once loaded.
	got, err := loader.loadFrom("/other/libopenvino_c.so")
	require.NoError(t, err)
	require.Same(t, api, got)
	require.Equal(t, int32(2), numOpens.Load())
}

func TestRuntimeLoader_ExplicitPath(t *testing.T) {
	var openedPath string
	loader := &runtimeLoader{
		find: func() (string, bool) {
			t.Fatal("explicit path should not be searched")
			return "", false
		},
		open: func(libPath string) (nativeAPI, error) {
			openedPath = libPath
			return newFakeAPI(), nil
		},
	}
	_ = capture(loader.loadFrom("/usr/lib/./libopenvino_c.so")).Test(t)
	require.Equal(t, "/usr/lib/libopenvino_c.so", openedPath)
}
