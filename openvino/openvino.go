// Package openvino implements a Go wrapper for the Core of OpenVINO's Inference Engine C API.
//
// A Core is the handle to the inference runtime: it reads Networks (a model topology in OpenVINO's XML IR
// format, plus its binary weights) from files or from memory, and compiles them for a device ("CPU", "GPU", ...)
// into ExecutableNetworks.
//
// The native library is loaded dynamically (dlopen) the first time a Core is created, and stays loaded for the
// lifetime of the process. See package finder for where it is searched.
//
// Every object that holds a native handle (Core, Network, ExecutableNetwork) has a Destroy method that releases
// it. Destroy is idempotent, and it is also called automatically if the object is garbage collected, but it is
// good practice to call it explicitly, since the garbage collector is not aware of the memory used by the native
// runtime.
//
// Example:
//
//	core, err := openvino.NewCore()
//	if err != nil { ... }
//	defer core.Destroy()
//	network, err := core.ReadNetworkFromFile("model.xml", "model.bin")
//	if err != nil { ... }
//	defer network.Destroy()
//	exec, err := core.LoadNetwork(network, "CPU")
//	if err != nil { ... }
//	defer exec.Destroy()
package openvino

// Generate the StatusCode String() method and friends.
//go:generate go tool enumer -type=StatusCode -trimprefix=Status status.go
