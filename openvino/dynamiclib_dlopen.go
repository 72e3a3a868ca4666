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

// Modified version of https://github.com/coreos/pkg/blob/main/dlopen/dlopen.go, licenced with Apache 2.0 license
// https://github.com/coreos/pkg/blob/main/LICENSE

// #cgo linux LDFLAGS: -ldl
/*
#include <stdlib.h>
#include <dlfcn.h>
#include "openvino_c.h"
*/
import "C"
import (
	"os"
	"unsafe"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// openLibrary dlopen's the OpenVINO C API library and resolves all the symbols used.
// The library is never closed once successfully loaded.
func openLibrary(libPath string) (nativeAPI, error) {
	info, err := os.Stat(libPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %q", libPath)
	}
	if info.IsDir() {
		return nil, errors.Errorf("library path %q is a directory!?", libPath)
	}

	nameC := C.CString(libPath)
	klog.V(2).Infof("trying to load library %s", libPath)
	handle := C.dlopen(nameC, C.RTLD_LAZY|C.RTLD_LOCAL)
	cFree(nameC)
	if handle == nil {
		msg := C.GoString(C.dlerror())
		return nil, errors.Errorf("failed to dynamically load OpenVINO from %q: %q -- check with `ldd %s` in case there are missing required libraries",
			libPath, msg, libPath)
	}
	h := &dllHandle{Handle: handle, Name: libPath}

	table, err := h.resolveAPI()
	if err != nil {
		if err2 := h.Close(); err2 != nil {
			klog.Warningf("Failed to close dynamic library %q: %v", libPath, err2)
		}
		return nil, err
	}
	return &cAPI{table: table, path: libPath}, nil
}

// dllHandle represents an open handle to a library (.so or .dylib).
type dllHandle struct {
	Handle unsafe.Pointer
	Name   string
}

// resolveAPI returns a C allocated table with the resolved symbols.
func (l *dllHandle) resolveAPI() (*C.ov_api_t, error) {
	var missing []string
	symbol := func(name string) unsafe.Pointer {
		ptr, err := l.GetSymbolPointer(name)
		if err != nil || ptr == nil {
			missing = append(missing, name)
			return nil
		}
		return ptr
	}
	table := cMalloc[C.ov_api_t]()
	table.core_create = (C.ie_core_create_fn)(symbol("ie_core_create"))
	table.core_free = (C.ie_core_free_fn)(symbol("ie_core_free"))
	table.core_read_network = (C.ie_core_read_network_fn)(symbol("ie_core_read_network"))
	table.core_read_network_from_memory = (C.ie_core_read_network_from_memory_fn)(symbol("ie_core_read_network_from_memory"))
	table.core_load_network = (C.ie_core_load_network_fn)(symbol("ie_core_load_network"))
	table.network_free = (C.ie_network_free_fn)(symbol("ie_network_free"))
	table.exec_network_free = (C.ie_exec_network_free_fn)(symbol("ie_exec_network_free"))
	table.blob_make_memory_from_preallocated = (C.ie_blob_make_memory_from_preallocated_fn)(symbol("ie_blob_make_memory_from_preallocated"))
	table.blob_free = (C.ie_blob_free_fn)(symbol("ie_blob_free"))
	if len(missing) > 0 {
		cFree(table)
		return nil, errors.Errorf("library %q doesn't export the OpenVINO C API symbols %v: is it the inference engine C API library?",
			l.Name, missing)
	}

	// Optional: only used to report the version.
	versionFn, err := l.GetSymbolPointer("ie_c_api_version")
	versionFreeFn, err2 := l.GetSymbolPointer("ie_version_free")
	if err == nil && err2 == nil {
		table.c_api_version = (C.ie_c_api_version_fn)(versionFn)
		table.version_free = (C.ie_version_free_fn)(versionFreeFn)
	} else {
		klog.V(1).Infof("library %q doesn't export its version", l.Name)
	}
	return table, nil
}

// GetSymbolPointer takes a symbol name and returns a pointer to the symbol.
func (l *dllHandle) GetSymbolPointer(symbol string) (unsafe.Pointer, error) {
	sym := C.CString(symbol)
	defer C.free(unsafe.Pointer(sym))

	C.dlerror()
	p := C.dlsym(l.Handle, sym)
	e := C.dlerror()
	if e != nil {
		return nil, errors.Errorf("error resolving symbol %q: %v", symbol, errors.New(C.GoString(e)))
	}
	return p, nil
}

// Close closes a LibHandle.
func (l *dllHandle) Close() error {
	C.dlerror()
	C.dlclose(l.Handle)
	e := C.dlerror()
	if e != nil {
		return errors.Errorf("error closing %v: %v", l.Name, errors.New(C.GoString(e)))
	}
	return nil
}
