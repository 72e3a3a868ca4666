package openvino

import (
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"k8s.io/klog/v2"
)

// DebugLeaksEnv is the name of the environment variable that, if set to a non-empty value, makes every handle
// record the stack where it was created, which is logged if it is garbage collected without being destroyed.
const DebugLeaksEnv = "GOOPENVINO_DEBUG_LEAKS"

var debugLeaks = os.Getenv(DebugLeaksEnv) != ""

// ownedHandle owns one native handle, and releases it exactly once.
//
// It is kept separate from the Core/Network/ExecutableNetwork holding it, so it can be used as the argument
// of the cleanup registered with runtime.AddCleanup.
type ownedHandle struct {
	mu    sync.Mutex
	ptr   unsafe.Pointer
	kind  string
	free  func(unsafe.Pointer)
	alive *atomic.Int64
	stack []byte
}

func newOwnedHandle(kind string, ptr unsafe.Pointer, free func(unsafe.Pointer), alive *atomic.Int64) *ownedHandle {
	h := &ownedHandle{ptr: ptr, kind: kind, free: free, alive: alive}
	if debugLeaks {
		buf := make([]byte, 10*1024)
		n := runtime.Stack(buf, false)
		h.stack = buf[:n]
	}
	alive.Add(1)
	return h
}

// get returns the native handle, or nil if it was already released.
func (h *ownedHandle) get() unsafe.Pointer {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ptr
}

// release frees the native handle. It is a no-op if it was already released.
// It returns whether the handle was freed by this call.
func (h *ownedHandle) release() bool {
	if h == nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ptr == nil {
		return false
	}
	ptr := h.ptr
	h.ptr = nil
	h.free(ptr)
	h.alive.Add(-1)
	return true
}

// releaseLeaked is the cleanup registered for the owner of the handle: it's a no-op if the owner was
// properly destroyed.
func (h *ownedHandle) releaseLeaked() {
	if h.get() == nil {
		return // Correctly destroyed.
	}
	if h.stack == nil {
		klog.V(1).Infof("OpenVINO %s garbage collected without being destroyed, freeing it now (set %s=1 to see where it was created)",
			h.kind, DebugLeaksEnv)
	} else {
		klog.Warningf("OpenVINO %s garbage collected without being destroyed, freeing it now. Stack:\n%s\n", h.kind, h.stack)
	}
	h.release()
}
