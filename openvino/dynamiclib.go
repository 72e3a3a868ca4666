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
	"path/filepath"
	"sync"

	"github.com/gomlx/goopenvino/openvino/finder"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// This file holds the OS independent part of loading the OpenVINO runtime library.
// The per-OS implementations (dynamiclib_<os>.go files) provide:
//
//	openLibrary(libPath string) (nativeAPI, error)

// runtimeLoader loads the OpenVINO C API library at most once per process.
//
// The first successful load wins and is kept for the lifetime of the process. Failures are not cached:
// the next call tries again, so a fixed environment (e.g. OPENVINO_LIBRARY_PATH) can be picked up.
type runtimeLoader struct {
	mu   sync.Mutex
	api  nativeAPI
	path string

	find func() (libPath string, found bool)
	open func(libPath string) (nativeAPI, error)
}

// defaultRuntimeLoader is the process-wide loader used by NewCore.
var defaultRuntimeLoader = &runtimeLoader{
	find: func() (string, bool) { return finder.FindLibrary() },
	open: openLibrary,
}

// load returns the loaded runtime, searching and loading it if needed.
func (l *runtimeLoader) load() (nativeAPI, error) {
	return l.loadFrom("")
}

// loadFrom loads the runtime from libPath, or searches for it if libPath is empty.
// If the runtime is already loaded it is returned, even if from a different path.
//
// It uses a mutex to serialize (make it safe) calls from different goroutines.
func (l *runtimeLoader) loadFrom(libPath string) (nativeAPI, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.api != nil {
		if libPath != "" && filepath.Clean(libPath) != l.path {
			klog.Warningf("OpenVINO runtime already loaded from %q, ignoring request to load it from %q", l.path, libPath)
		}
		return l.api, nil
	}

	if libPath == "" {
		var found bool
		libPath, found = l.find()
		if !found {
			return nil, errors.WithStack(&LoadingError{
				Kind: SystemFailure,
				Err: errors.Errorf("library %v not found in paths %v: set %s to the directory(s) with the library, "+
					"or %s to the OpenVINO installation", finder.LibraryNames, finder.SearchPaths(),
					finder.LibraryPathEnv, finder.InstallDirEnv),
			})
		}
	}
	libPath = filepath.Clean(libPath)
	klog.V(1).Infof("attempting to load OpenVINO runtime from %s", libPath)
	api, err := l.open(libPath)
	if err != nil {
		return nil, errors.WithStack(&LoadingError{Kind: SystemFailure, Path: libPath, Err: err})
	}
	l.api, l.path = api, libPath
	klog.V(1).Infof("loaded OpenVINO runtime %s (version %q)", libPath, api.version())
	return api, nil
}

// loadedPath returns the path of the loaded runtime library, or "" if not loaded yet.
func (l *runtimeLoader) loadedPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}

// LoadRuntime loads the OpenVINO C API library from libPath, or searches for it (see package finder) if
// libPath is empty.
//
// It is called automatically by NewCore, and is only needed to force the library to be loaded from a specific
// path. The library is loaded at most once per process: if it is already loaded, it is a no-op.
func LoadRuntime(libPath string) error {
	_, err := defaultRuntimeLoader.loadFrom(libPath)
	return err
}

// RuntimePath returns the path of the loaded OpenVINO library, or "" if it hasn't been loaded yet.
func RuntimePath() string {
	return defaultRuntimeLoader.loadedPath()
}

// Version returns the version of the OpenVINO C API, loading the runtime if needed.
// It returns an empty version (and no error) if the library doesn't export its version.
func Version() (string, error) {
	api, err := defaultRuntimeLoader.load()
	if err != nil {
		return "", err
	}
	return api.version(), nil
}
