package openvino

import (
	"fmt"

	"github.com/pkg/errors"
)

// OperationError is returned when a call to the OpenVINO C API returns a status other than StatusOK.
//
// The status is the one returned by the runtime, unchanged: its meaning (bad model, unknown device, ...)
// is defined by OpenVINO, and no further interpretation is attempted here.
type OperationError struct {
	// Op is the name of the C API function that failed.
	Op string

	// Status returned by the C API function.
	Status StatusCode
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	return fmt.Sprintf("OpenVINO error: %s() returned status %s (%d)", e.Op, e.Status, int(e.Status))
}

// LoadingErrorKind enumerates the reasons the OpenVINO runtime could not be set up.
type LoadingErrorKind int

const (
	// SystemFailure means the native library could not be located or loaded.
	SystemFailure LoadingErrorKind = iota

	// CannotStringifyPath means a configuration file path cannot be represented as a C string.
	CannotStringifyPath
)

// String implements fmt.Stringer.
func (k LoadingErrorKind) String() string {
	switch k {
	case SystemFailure:
		return "SystemFailure"
	case CannotStringifyPath:
		return "CannotStringifyPath"
	}
	return fmt.Sprintf("LoadingErrorKind(%d)", int(k))
}

// LoadingError is returned by NewCore and NewCoreWithConfig when the runtime can't be set up.
//
// It can only happen during the creation of a Core and, differently from OperationError, it usually requires
// fixing the installation (or the environment variables used to find it) before trying again.
type LoadingError struct {
	Kind LoadingErrorKind

	// Path involved in the failure, if any: the library path for SystemFailure or the configuration file
	// for CannotStringifyPath.
	Path string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *LoadingError) Error() string {
	switch e.Kind {
	case SystemFailure:
		if e.Path == "" {
			return fmt.Sprintf("OpenVINO loading error: failed to load the runtime library: %v", e.Err)
		}
		return fmt.Sprintf("OpenVINO loading error: failed to load the runtime library %q: %v", e.Path, e.Err)
	case CannotStringifyPath:
		return fmt.Sprintf("OpenVINO loading error: configuration path %q cannot be converted to a C string", e.Path)
	}
	return fmt.Sprintf("OpenVINO loading error (%s): %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadingError) Unwrap() error {
	return e.Err
}

// IsSetupError returns whether err was caused by the construction of a Core failing: either a LoadingError,
// or an OperationError from the native "create core" call.
func IsSetupError(err error) bool {
	var loadingErr *LoadingError
	if errors.As(err, &loadingErr) {
		return true
	}
	var opErr *OperationError
	return errors.As(err, &opErr) && opErr.Op == opCoreCreate
}

// StatusOf returns the status of the OperationError wrapped in err, if there is one.
func StatusOf(err error) (status StatusCode, ok bool) {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Status, true
	}
	return StatusOK, false
}

// Names of the C API functions, used in OperationError.Op.
const (
	opCoreCreate                 = "ie_core_create"
	opCoreReadNetwork            = "ie_core_read_network"
	opCoreReadNetworkFromMemory  = "ie_core_read_network_from_memory"
	opCoreLoadNetwork            = "ie_core_load_network"
	opBlobMakeMemoryPreallocated = "ie_blob_make_memory_from_preallocated"
)

// toError converts the status returned by the C API function op to a Go error, with a stack trace
// (see github.com/pkg/errors package).
// It returns nil for StatusOK.
func toError(op string, status StatusCode) error {
	if status == StatusOK {
		return nil
	}
	return errors.WithStack(&OperationError{Op: op, Status: status})
}
