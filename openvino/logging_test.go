//go:build linux || darwin

package openvino

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuppressNativeLogging(t *testing.T) {
	originalStderr := os.Stderr
	SuppressNativeLogging(func() { fmt.Fprintln(os.Stderr, "SuppressNativeLogging call 1") })
	SuppressNativeLogging(func() { fmt.Fprintln(os.Stderr, "SuppressNativeLogging call 2") })
	require.Same(t, originalStderr, os.Stderr)

	// Files opened afterwards may reuse the fd numbers used during the suppression: they must not be closed
	// behind their back when the temporary stderr is garbage collected.
	f, err := os.Create(filepath.Join(t.TempDir(), "after_suppression.txt"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	for range 5 {
		runtime.GC()
	}
	_, err = f.WriteString("still open\n")
	require.NoError(t, err)
	_, err = fmt.Fprintln(os.Stderr, "stderr restored")
	require.NoError(t, err)
}
