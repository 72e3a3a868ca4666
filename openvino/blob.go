package openvino

import (
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/gomlx/goopenvino/tensordesc"
	"github.com/pkg/errors"
)

// blob is a native tensor that is a view over Go memory: it doesn't copy the data.
//
// It is only used transiently within one Core operation, and must be destroyed before the operation returns.
// The data is pinned for the lifetime of the blob.
type blob struct {
	handle *ownedHandle
	desc   tensordesc.Desc
	pinner runtime.Pinner
}

var numBlobs atomic.Int64

// blobsAlive returns the number of native blobs not yet destroyed.
func blobsAlive() int64 {
	return numBlobs.Load()
}

// newBlob creates a blob described by desc over data.
//
// Only what the native descriptor can't represent is validated locally (see tensordesc.Desc.Check): too large
// a rank fails with StatusOutOfBounds and negative dimensions with StatusParameterMismatch. Everything else
// (e.g. len(data) matching the descriptor) is validated by OpenVINO.
func newBlob(api nativeAPI, desc tensordesc.Desc, data []byte) (*blob, error) {
	if err := desc.Check(); err != nil {
		status := StatusParameterMismatch
		if errors.Is(err, tensordesc.ErrRankTooLarge) {
			status = StatusOutOfBounds
		}
		return nil, errors.WithMessage(&OperationError{Op: opBlobMakeMemoryPreallocated, Status: status}, err.Error())
	}

	b := &blob{desc: desc}
	if len(data) > 0 {
		b.pinner.Pin(unsafe.SliceData(data))
	}
	ptr, status := api.blobMakeMemoryFromPreallocated(desc, data)
	if err := toError(opBlobMakeMemoryPreallocated, status); err != nil {
		b.pinner.Unpin()
		return nil, errors.WithMessagef(err, "failed to create blob for tensor %s with %d bytes", desc, len(data))
	}
	if ptr == nil {
		b.pinner.Unpin()
		return nil, nilHandleError(opBlobMakeMemoryPreallocated)
	}
	b.handle = newOwnedHandle("blob", ptr, api.blobFree, &numBlobs)
	return b, nil
}

// destroy frees the native blob and unpins the data. It's safe to call more than once.
func (b *blob) destroy() {
	if b == nil {
		return
	}
	b.handle.release()
	b.pinner.Unpin()
}

// nilHandleError is returned when a native call reports success but doesn't return a handle.
func nilHandleError(op string) error {
	return errors.Errorf("OpenVINO error: %s() returned status OK but a nil handle", op)
}
