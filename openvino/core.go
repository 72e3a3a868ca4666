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

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/gomlx/goopenvino/openvino/finder"
	"github.com/gomlx/goopenvino/tensordesc"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// useEngineDefaults is the configuration file path that makes OpenVINO use its built-in defaults.
const useEngineDefaults = ""

// Core is the entry point to the OpenVINO runtime: it reads models into Networks and loads (compiles) them
// into ExecutableNetworks for a device.
//
// It must be destroyed with Destroy when no longer needed. As a safety net it is also freed when garbage
// collected, but relying on it is not recommended. Networks and ExecutableNetworks created by the Core are
// independent of it, and must be destroyed separately.
//
// Methods are not safe to be called concurrently with Destroy.
type Core struct {
	api        nativeAPI
	handle     *ownedHandle
	configFile string
}

var numCores atomic.Int64

// CoresAlive returns the number of Cores currently in memory and not yet destroyed.
func CoresAlive() int64 {
	return numCores.Load()
}

// coreSetup holds the collaborators used to create a Core.
type coreSetup struct {
	loadRuntime    func() (nativeAPI, error)
	findPluginsXML func() (path string, found bool)
}

var defaultCoreSetup = coreSetup{
	loadRuntime:    defaultRuntimeLoader.load,
	findPluginsXML: finder.FindPluginsXML,
}

// NewCore loads the OpenVINO runtime (once per process) and creates a new Core.
//
// The device plugins configuration file (plugins.xml) is searched with finder.FindPluginsXML. If none
// is found, OpenVINO's defaults are used.
//
// It returns a *LoadingError if the runtime can't be loaded, or an *OperationError if OpenVINO fails to create
// the core. IsSetupError returns true for both.
func NewCore() (*Core, error) {
	return defaultCoreSetup.newCore(nil)
}

// NewCoreWithConfig is like NewCore, but uses the given plugins configuration file, instead of searching for one.
//
// An empty xmlConfigFile makes OpenVINO use its defaults.
func NewCoreWithConfig(xmlConfigFile string) (*Core, error) {
	return defaultCoreSetup.newCore(&xmlConfigFile)
}

func (s coreSetup) newCore(xmlConfigFile *string) (*Core, error) {
	api, err := s.loadRuntime()
	if err != nil {
		return nil, err
	}
	configFile, err := s.resolveConfigFile(xmlConfigFile)
	if err != nil {
		return nil, err
	}

	klog.V(1).Infof("creating OpenVINO core with configuration %q", configFile)
	ptr, status := api.coreCreate(configFile)
	if err := toError(opCoreCreate, status); err != nil {
		return nil, errors.WithMessagef(err, "failed to create OpenVINO core with configuration file %q", configFile)
	}
	if ptr == nil {
		return nil, nilHandleError(opCoreCreate)
	}
	c := &Core{
		api:        api,
		configFile: configFile,
		handle:     newOwnedHandle("Core", ptr, api.coreFree, &numCores),
	}
	runtime.AddCleanup(c, (*ownedHandle).releaseLeaked, c.handle)
	return c, nil
}

// resolveConfigFile returns, in order of precedence, the explicit configuration file, the discovered one, or
// useEngineDefaults.
func (s coreSetup) resolveConfigFile(explicit *string) (string, error) {
	if explicit != nil {
		if !isCString(*explicit) {
			return "", errors.WithStack(&LoadingError{Kind: CannotStringifyPath, Path: *explicit})
		}
		return *explicit, nil
	}
	if s.findPluginsXML != nil {
		if discovered, found := s.findPluginsXML(); found {
			if !utf8.ValidString(discovered) || !isCString(discovered) {
				return "", errors.WithStack(&LoadingError{Kind: CannotStringifyPath, Path: discovered})
			}
			return discovered, nil
		}
	}
	return useEngineDefaults, nil
}

// isCString returns whether s can be converted to a C string without truncation.
func isCString(s string) bool {
	return strings.IndexByte(s, 0) < 0
}

// checkCString returns an error if the value can't be passed as a C string.
func checkCString(what, value string) error {
	if !isCString(value) {
		return errors.Errorf("%s %q contains a NUL character, it can't be passed to OpenVINO", what, value)
	}
	return nil
}

// ConfigFile returns the plugins configuration file used to create the Core, or "" if OpenVINO's defaults were used.
func (c *Core) ConfigFile() string {
	return c.configFile
}

// check returns an error if the Core is nil or has been destroyed.
func (c *Core) check() (err error) {
	if c == nil || c.handle.get() == nil {
		return errors.New("OpenVINO Core is nil or has already been destroyed")
	}
	return nil
}

// Destroy frees the native Core. It's a no-op if it was already destroyed.
func (c *Core) Destroy() {
	if c == nil {
		return
	}
	if c.handle.release() {
		klog.V(2).Infof("destroyed OpenVINO core")
	}
}

// String implements fmt.Stringer.
func (c *Core) String() string {
	if c.check() != nil {
		return "Invalid Core"
	}
	if c.configFile == useEngineDefaults {
		return "Core(config=<defaults>)"
	}
	return fmt.Sprintf("Core(config=%s)", c.configFile)
}

// ReadNetworkFromFile reads a model in OpenVINO's IR format (or any other format supported by the runtime's
// frontends, e.g. ONNX) from modelPath, with its weights in weightsPath.
//
// If weightsPath is empty, OpenVINO looks for a file with the same name as the model and the ".bin" extension.
// The files are read and validated by OpenVINO, and any failure is returned as an *OperationError.
func (c *Core) ReadNetworkFromFile(modelPath, weightsPath string) (*Network, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(c)
	if err := checkCString("model path", modelPath); err != nil {
		return nil, err
	}
	if err := checkCString("weights path", weightsPath); err != nil {
		return nil, err
	}

	ptr, status := c.api.coreReadNetwork(c.handle.get(), modelPath, weightsPath)
	if err := toError(opCoreReadNetwork, status); err != nil {
		return nil, errors.WithMessagef(err, "failed to read network from %q (weights %q)", modelPath, weightsPath)
	}
	if ptr == nil {
		return nil, nilHandleError(opCoreReadNetwork)
	}
	return newNetwork(c.api, ptr, modelPath), nil
}

// ReadNetworkFromBuffer reads a model from memory: modelContent is the model description (e.g. the IR's XML)
// and weightsContent are the raw weights (the IR's ".bin" contents).
//
// The weights are not copied by this call: they are passed to OpenVINO through a temporary blob that is released
// before returning, whether it succeeds or not.
func (c *Core) ReadNetworkFromBuffer(modelContent, weightsContent []byte) (*Network, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(c)

	weights, err := newBlob(c.api, tensordesc.FlatBytes(len(weightsContent)), weightsContent)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to pass %d bytes of weights to OpenVINO", len(weightsContent))
	}
	defer weights.destroy()

	ptr, status := c.api.coreReadNetworkFromMemory(c.handle.get(), modelContent, weights.handle.get())
	if err := toError(opCoreReadNetworkFromMemory, status); err != nil {
		return nil, errors.WithMessagef(err, "failed to read network from memory (%d bytes of model, %d bytes of weights)",
			len(modelContent), len(weightsContent))
	}
	if ptr == nil {
		return nil, nilHandleError(opCoreReadNetworkFromMemory)
	}
	return newNetwork(c.api, ptr, fmt.Sprintf("memory: %d bytes", len(modelContent))), nil
}

// LoadNetwork compiles network for the given device (e.g. "CPU", "GPU", "AUTO").
//
// The device is configured to use a single inference thread (see NumThreadsKey), use LoadNetworkWithConfig
// to change it. The network is not consumed: it remains valid, can be loaded again, and must still be destroyed.
func (c *Core) LoadNetwork(network *Network, device string) (*ExecutableNetwork, error) {
	return c.LoadNetworkWithConfig(network, device, nil)
}

// LoadNetworkWithConfig is like LoadNetwork, but passes the given configuration to the device.
// If config is empty, the configuration used by LoadNetwork is used instead.
func (c *Core) LoadNetworkWithConfig(network *Network, device string, config ConfigMap) (*ExecutableNetwork, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(c)
	if network == nil || network.handle.get() == nil {
		return nil, errors.New("LoadNetwork: Network is nil or has already been destroyed")
	}
	defer runtime.KeepAlive(network)
	if err := checkCString("device name", device); err != nil {
		return nil, err
	}
	if len(config) == 0 {
		config = defaultLoadConfig()
	}
	entries, err := config.entries()
	if err != nil {
		return nil, err
	}

	klog.V(1).Infof("loading %s on device %q with configuration %v", network, device, entries)
	ptr, status := c.api.coreLoadNetwork(c.handle.get(), network.handle.get(), device, entries)
	if err := toError(opCoreLoadNetwork, status); err != nil {
		return nil, errors.WithMessagef(err, "failed to load %s on device %q", network, device)
	}
	if ptr == nil {
		return nil, nilHandleError(opCoreLoadNetwork)
	}
	return newExecutableNetwork(c.api, ptr, device), nil
}
