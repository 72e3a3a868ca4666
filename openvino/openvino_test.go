package openvino

// Common initialization and testing tools for all test files.

import (
	"flag"
	"fmt"
	"sync"
	"testing"
	"unsafe"

	"github.com/gomlx/goopenvino/tensordesc"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

var (
	flagModel   = flag.String("model", "", "path to an OpenVINO IR model (.xml) used by the tests with the real runtime; they are skipped if not set")
	flagWeights = flag.String("weights", "", "path to the weights (.bin) of -model; if empty OpenVINO looks next to the model")
	flagDevice  = flag.String("device", "CPU", "device used by the tests with the real runtime")
)

func init() {
	klog.InitFlags(nil)
}

type errTester[T any] struct {
	value T
	err   error
}

// capture is a shortcut to test that there is no error and return the value.
func capture[T any](value T, err error) errTester[T] {
	return errTester[T]{value, err}
}

func (e errTester[T]) Test(t *testing.T) T {
	require.NoError(t, e.err)
	return e.value
}

// fakeObject is what the fake native handles point to.
type fakeObject struct {
	kind string
	id   int
}

// fakeAPI implements nativeAPI in memory: it tracks every handle created and freed, records the arguments
// it's called with, and can be configured to fail any of the calls.
type fakeAPI struct {
	mu      sync.Mutex
	nextID  int
	live    map[unsafe.Pointer]*fakeObject
	misuses []string

	// Recorded arguments.
	createdWith []string
	readFiles   [][2]string
	blobDescs   []tensordesc.Desc
	devices     []string
	configs     [][]configEntry

	// Fault injection: status returned by each call, if not StatusOK.
	failCreate, failRead, failReadFromMemory, failLoad, failBlob StatusCode
	failDevices                                                 map[string]StatusCode

	// nilHandles makes every call return StatusOK and a nil handle.
	nilHandles bool

	versionString string
}

var _ nativeAPI = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		live:          make(map[unsafe.Pointer]*fakeObject),
		failDevices:   map[string]StatusCode{"NONEXISTENT_DEVICE": StatusGeneralError},
		versionString: "2.1.0-fake",
	}
}

func (f *fakeAPI) alloc(kind string) unsafe.Pointer {
	if f.nilHandles {
		return nil
	}
	f.nextID++
	obj := &fakeObject{kind: kind, id: f.nextID}
	ptr := unsafe.Pointer(obj)
	f.live[ptr] = obj
	return ptr
}

// isLive returns whether ptr is a live handle of the given kind, and records a misuse otherwise.
func (f *fakeAPI) isLive(kind string, ptr unsafe.Pointer) bool {
	obj, found := f.live[ptr]
	if !found || obj.kind != kind {
		f.misuses = append(f.misuses, fmt.Sprintf("use of invalid %s handle %p", kind, ptr))
		return false
	}
	return true
}

func (f *fakeAPI) free(kind string, ptr unsafe.Pointer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.isLive(kind, ptr) {
		return
	}
	delete(f.live, ptr)
}

// liveCount returns the number of live handles of the given kind.
func (f *fakeAPI) liveCount(kind string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, obj := range f.live {
		if obj.kind == kind {
			count++
		}
	}
	return count
}

func (f *fakeAPI) coreCreate(xmlConfigFile string) (unsafe.Pointer, StatusCode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdWith = append(f.createdWith, xmlConfigFile)
	if f.failCreate != StatusOK {
		return nil, f.failCreate
	}
	return f.alloc("core"), StatusOK
}

func (f *fakeAPI) coreFree(core unsafe.Pointer) { f.free("core", core) }

func (f *fakeAPI) coreReadNetwork(core unsafe.Pointer, modelPath, weightsPath string) (unsafe.Pointer, StatusCode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.isLive("core", core) {
		return nil, StatusGeneralError
	}
	f.readFiles = append(f.readFiles, [2]string{modelPath, weightsPath})
	if f.failRead != StatusOK {
		return nil, f.failRead
	}
	return f.alloc("network"), StatusOK
}

func (f *fakeAPI) coreReadNetworkFromMemory(core unsafe.Pointer, model []byte, weights unsafe.Pointer) (unsafe.Pointer, StatusCode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.isLive("core", core) || !f.isLive("blob", weights) {
		return nil, StatusGeneralError
	}
	if f.failReadFromMemory != StatusOK {
		return nil, f.failReadFromMemory
	}
	if len(model) == 0 {
		return nil, StatusGeneralError
	}
	return f.alloc("network"), StatusOK
}

func (f *fakeAPI) coreLoadNetwork(core, network unsafe.Pointer, device string, config []configEntry) (unsafe.Pointer, StatusCode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.isLive("core", core) || !f.isLive("network", network) {
		return nil, StatusGeneralError
	}
	f.devices = append(f.devices, device)
	f.configs = append(f.configs, config)
	if f.failLoad != StatusOK {
		return nil, f.failLoad
	}
	if status, found := f.failDevices[device]; found {
		return nil, status
	}
	return f.alloc("exec"), StatusOK
}

func (f *fakeAPI) networkFree(network unsafe.Pointer) { f.free("network", network) }

func (f *fakeAPI) execNetworkFree(exec unsafe.Pointer) { f.free("exec", exec) }

func (f *fakeAPI) blobMakeMemoryFromPreallocated(desc tensordesc.Desc, data []byte) (unsafe.Pointer, StatusCode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blobDescs = append(f.blobDescs, desc)
	if f.failBlob != StatusOK {
		return nil, f.failBlob
	}
	if desc.ByteSize() != len(data) {
		return nil, StatusParameterMismatch
	}
	return f.alloc("blob"), StatusOK
}

func (f *fakeAPI) blobFree(blob unsafe.Pointer) { f.free("blob", blob) }

func (f *fakeAPI) version() string { return f.versionString }

// requireAllFreed checks that no native handle is left, and that none was misused (e.g. freed twice).
func (f *fakeAPI) requireAllFreed(t *testing.T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	require.Empty(t, f.misuses)
	require.Empty(t, f.live)
}

// newTestSetup returns a coreSetup using the fake runtime, and the given discovered plugins.xml, if not empty.
func newTestSetup(api nativeAPI, discovered string) coreSetup {
	return coreSetup{
		loadRuntime: func() (nativeAPI, error) { return api, nil },
		findPluginsXML: func() (string, bool) {
			return discovered, discovered != ""
		},
	}
}

// newTestCore creates a Core on the fake runtime.
func newTestCore(t *testing.T, api *fakeAPI) *Core {
	return capture(newTestSetup(api, "").newCore(nil)).Test(t)
}
