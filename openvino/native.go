package openvino

import (
	"unsafe"

	"github.com/gomlx/goopenvino/tensordesc"
)

// nativeAPI is the boundary with the OpenVINO C API: one method per C entry point used.
//
// Handles are the opaque pointers returned by the C API (ie_core_t*, ie_network_t*, ...). They are only
// meaningful as arguments to the other methods, and are never exposed outside the owning Go object.
//
// Methods that create a handle return it together with the status of the call, and the handle is only
// valid if the status is StatusOK. The free methods take the handle to release, and can't fail.
//
// The implementation backed by the dynamically loaded library is in native_cgo.go. Tests use a fake.
type nativeAPI interface {
	coreCreate(xmlConfigFile string) (core unsafe.Pointer, status StatusCode)
	coreFree(core unsafe.Pointer)

	coreReadNetwork(core unsafe.Pointer, modelPath, weightsPath string) (network unsafe.Pointer, status StatusCode)

	// coreReadNetworkFromMemory reads the network from the model contents; the memory must be pinned
	// during the call.
	coreReadNetworkFromMemory(core unsafe.Pointer, model []byte, weights unsafe.Pointer) (network unsafe.Pointer, status StatusCode)

	coreLoadNetwork(core, network unsafe.Pointer, device string, config []configEntry) (exec unsafe.Pointer, status StatusCode)

	networkFree(network unsafe.Pointer)
	execNetworkFree(exec unsafe.Pointer)

	// blobMakeMemoryFromPreallocated creates a blob that is a view over data: data must stay pinned until
	// the blob is freed.
	blobMakeMemoryFromPreallocated(desc tensordesc.Desc, data []byte) (blob unsafe.Pointer, status StatusCode)
	blobFree(blob unsafe.Pointer)

	// version returns the version reported by the library, or "" if not available.
	version() string
}
