package openvino

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"unsafe"
)

// Network is a model read by Core.ReadNetworkFromFile or Core.ReadNetworkFromBuffer, and not yet compiled
// for any device.
//
// It can be loaded (compiled) by Core.LoadNetwork any number of times, for the same or different devices.
// It must be destroyed with Destroy when no longer needed. As a safety net it is also freed when garbage
// collected, but relying on it is not recommended.
type Network struct {
	handle *ownedHandle
	source string
}

var numNetworks atomic.Int64

// NetworksAlive returns the number of Networks currently in memory and not yet destroyed.
func NetworksAlive() int64 {
	return numNetworks.Load()
}

func newNetwork(api nativeAPI, ptr unsafe.Pointer, source string) *Network {
	n := &Network{source: source, handle: newOwnedHandle("Network", ptr, api.networkFree, &numNetworks)}
	runtime.AddCleanup(n, (*ownedHandle).releaseLeaked, n.handle)
	return n
}

// Destroy frees the native network. It's a no-op if it was already destroyed.
//
// ExecutableNetworks loaded from it are independent and remain valid.
func (n *Network) Destroy() {
	if n == nil {
		return
	}
	n.handle.release()
}

// String implements fmt.Stringer.
func (n *Network) String() string {
	if n == nil || n.handle.get() == nil {
		return "Invalid Network"
	}
	return fmt.Sprintf("Network(%s)", n.source)
}

// ExecutableNetwork is a Network compiled for a specific device, returned by Core.LoadNetwork.
//
// It must be destroyed with Destroy when no longer needed.
type ExecutableNetwork struct {
	handle *ownedHandle
	device string
}

var numExecutableNetworks atomic.Int64

// ExecutableNetworksAlive returns the number of ExecutableNetworks currently in memory and not yet destroyed.
func ExecutableNetworksAlive() int64 {
	return numExecutableNetworks.Load()
}

func newExecutableNetwork(api nativeAPI, ptr unsafe.Pointer, device string) *ExecutableNetwork {
	e := &ExecutableNetwork{device: device, handle: newOwnedHandle("ExecutableNetwork", ptr, api.execNetworkFree, &numExecutableNetworks)}
	runtime.AddCleanup(e, (*ownedHandle).releaseLeaked, e.handle)
	return e
}

// Device returns the name of the device the network was loaded on.
func (e *ExecutableNetwork) Device() string {
	return e.device
}

// Destroy frees the native executable network. It's a no-op if it was already destroyed.
func (e *ExecutableNetwork) Destroy() {
	if e == nil {
		return
	}
	e.handle.release()
}

// String implements fmt.Stringer.
func (e *ExecutableNetwork) String() string {
	if e == nil || e.handle.get() == nil {
		return "Invalid ExecutableNetwork"
	}
	return fmt.Sprintf("ExecutableNetwork(device=%s)", e.device)
}
