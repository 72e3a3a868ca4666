package openvino

// StatusCode is defined on a separate file, so it will work with enumer -- it doesn't work with files using cgo.

// StatusCode is the status returned by the OpenVINO C API calls, see IEStatusCode in ie_c_api.h.
type StatusCode int

const (
	StatusOK                StatusCode = 0
	StatusGeneralError      StatusCode = -1
	StatusNotImplemented    StatusCode = -2
	StatusNetworkNotLoaded  StatusCode = -3
	StatusParameterMismatch StatusCode = -4
	StatusNotFound          StatusCode = -5
	StatusOutOfBounds       StatusCode = -6
	StatusUnexpected        StatusCode = -7
	StatusRequestBusy       StatusCode = -8
	StatusResultNotReady    StatusCode = -9
	StatusNotAllocated      StatusCode = -10
	StatusInferNotStarted   StatusCode = -11
	StatusNetworkNotRead    StatusCode = -12
	StatusInferCancelled    StatusCode = -13
)
