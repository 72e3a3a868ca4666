//go:build linux || darwin

package openvino

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// SuppressNativeLogging prevents the OpenVINO runtime and its device plugins from writing to the process
// stderr while fn runs. It does so by duplicating the file descriptor (fd) 2, reassigning the new fd to Go's
// os.Stderr and closing fd 2. After fn returns, fd 2 and os.Stderr are restored.
//
// Usually this is only needed around NewCore and Core.LoadNetwork, which is where plugins log the most.
//
// Since file descriptors are a global resource, this function is not reentrant, and you should
// make sure no two goroutines are calling this at the same time.
//
// On operating systems other than linux and darwin, it simply calls fn.
func SuppressNativeLogging(fn func()) {
	originalStderr := os.Stderr
	newStderr, err := suppressLogging()
	if err != nil {
		klog.Errorf("Failed to temporarily suppress OpenVINO logging: %+v", err)
	} else {
		defer func() {
			// Revert suppression: duplicate the new fd back to 2.
			if err := restoreStderr(int(newStderr.Fd())); err != nil {
				klog.Errorf("Failed to restore stderr while reverting suppression of logging: %v", err)
				return
			}
			os.Stderr = originalStderr
			// newStderr owns its fd: it must be closed through it, and only once.
			if err := newStderr.Close(); err != nil {
				klog.Errorf("Failed to close duplicated stderr: %v", err)
			}
		}()
	}
	fn()
}

// suppressLogging moves stderr to a new fd, returned as a file that is also set as os.Stderr, and closes fd 2.
func suppressLogging() (newStderr *os.File, err error) {
	newFd, err := syscall.Dup(2)
	if err != nil {
		err = errors.Wrap(err, "failed to duplicate (syscall.Dup) file descriptor 2 (stderr) in order to silence OpenVINO logging")
		return
	}
	err = syscall.Close(2)
	if err != nil {
		klog.Errorf("failed to syscall.Close(2): %v", err)
		err = nil // Report, but continue.
	}
	newStderr = os.NewFile(uintptr(newFd), "stderr")
	os.Stderr = newStderr
	return
}
