//go:build cgo && !windows

/*
 *	Copyright 2024 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package openvino

/*
#include "openvino_c.h"
*/
import "C"
import (
	"runtime"
	"unsafe"

	"github.com/gomlx/goopenvino/tensordesc"
)

// cAPI implements nativeAPI by calling the symbols resolved from the dynamically loaded library.
type cAPI struct {
	// table is allocated in C, and is never freed: the library stays loaded for the lifetime of the process.
	table *C.ov_api_t
	path  string
}

var _ nativeAPI = (*cAPI)(nil)

func (a *cAPI) coreCreate(xmlConfigFile string) (unsafe.Pointer, StatusCode) {
	cFile := C.CString(xmlConfigFile)
	defer cFree(cFile)
	var core *C.ie_core_t
	status := C.call_ie_core_create(a.table, cFile, &core)
	return unsafe.Pointer(core), StatusCode(status)
}

func (a *cAPI) coreFree(core unsafe.Pointer) {
	cCore := (*C.ie_core_t)(core)
	C.call_ie_core_free(a.table, &cCore)
}

func (a *cAPI) coreReadNetwork(core unsafe.Pointer, modelPath, weightsPath string) (unsafe.Pointer, StatusCode) {
	cModel := C.CString(modelPath)
	defer cFree(cModel)
	cWeights := C.CString(weightsPath)
	defer cFree(cWeights)
	var network *C.ie_network_t
	status := C.call_ie_core_read_network(a.table, (*C.ie_core_t)(core), cModel, cWeights, &network)
	return unsafe.Pointer(network), StatusCode(status)
}

func (a *cAPI) coreReadNetworkFromMemory(core unsafe.Pointer, model []byte, weights unsafe.Pointer) (unsafe.Pointer, StatusCode) {
	// Makes sure the model is not moved around by the GC during the C call.
	var pinner runtime.Pinner
	defer pinner.Unpin()
	var modelPtr *C.uint8_t
	if len(model) > 0 {
		dataPtr := unsafe.SliceData(model)
		pinner.Pin(dataPtr)
		modelPtr = (*C.uint8_t)(unsafe.Pointer(dataPtr))
	}
	var network *C.ie_network_t
	status := C.call_ie_core_read_network_from_memory(a.table, (*C.ie_core_t)(core),
		modelPtr, C.size_t(len(model)), (*C.ie_blob_t)(weights), &network)
	return unsafe.Pointer(network), StatusCode(status)
}

func (a *cAPI) coreLoadNetwork(core, network unsafe.Pointer, device string, config []configEntry) (unsafe.Pointer, StatusCode) {
	cDevice := C.CString(device)
	defer cFree(cDevice)

	// Build the ie_config_t linked list in C memory.
	var cConfig *C.struct_ie_config
	if len(config) > 0 {
		cConfig = cMallocArray[C.struct_ie_config](len(config))
		entries := unsafe.Slice(cConfig, len(config))
		for ii, entry := range config {
			entries[ii].name = C.CString(entry.name)
			entries[ii].value = C.CString(entry.value)
			if ii+1 < len(config) {
				entries[ii].next = &entries[ii+1]
			}
		}
		defer func() {
			for ii := range entries {
				cFree(entries[ii].name)
				cFree(entries[ii].value)
			}
			cFree(cConfig)
		}()
	}

	var exec *C.ie_executable_network_t
	status := C.call_ie_core_load_network(a.table, (*C.ie_core_t)(core), (*C.ie_network_t)(network),
		cDevice, (*C.ie_config_t)(unsafe.Pointer(cConfig)), &exec)
	return unsafe.Pointer(exec), StatusCode(status)
}

func (a *cAPI) networkFree(network unsafe.Pointer) {
	cNetwork := (*C.ie_network_t)(network)
	C.call_ie_network_free(a.table, &cNetwork)
}

func (a *cAPI) execNetworkFree(exec unsafe.Pointer) {
	cExec := (*C.ie_executable_network_t)(exec)
	C.call_ie_exec_network_free(a.table, &cExec)
}

func (a *cAPI) blobMakeMemoryFromPreallocated(desc tensordesc.Desc, data []byte) (unsafe.Pointer, StatusCode) {
	cDesc := cMalloc[C.tensor_desc_t]()
	defer cFree(cDesc)
	cDesc.layout = C.int(desc.Layout)
	cDesc.precision = C.int(desc.Precision)
	cDesc.dims.ranks = C.size_t(len(desc.Dimensions))
	for ii, dim := range desc.Dimensions {
		cDesc.dims.dims[ii] = C.size_t(dim)
	}

	// The caller is responsible for pinning data for the lifetime of the blob.
	var dataPtr unsafe.Pointer
	if len(data) > 0 {
		dataPtr = unsafe.Pointer(unsafe.SliceData(data))
	}
	var blob *C.ie_blob_t
	status := C.call_ie_blob_make_memory_from_preallocated(a.table, cDesc, dataPtr, C.size_t(len(data)), &blob)
	return unsafe.Pointer(blob), StatusCode(status)
}

func (a *cAPI) blobFree(blob unsafe.Pointer) {
	cBlob := (*C.ie_blob_t)(blob)
	C.call_ie_blob_free(a.table, &cBlob)
}

func (a *cAPI) version() string {
	return cStrFree(C.call_ie_c_api_version(a.table))
}
