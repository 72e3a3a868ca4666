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

// Package finder locates the files of an OpenVINO installation: the C API shared library and the
// plugins.xml file that lists the device plugins.
//
// Nothing here loads anything: it only searches the file system. Search paths are, in order:
//
//   - The directories in OPENVINO_LIBRARY_PATH (a ":" separated list, ";" on Windows). If it is set,
//     nothing else is searched.
//   - The library sub-directories of the installation roots given by OPENVINO_INSTALL_DIR and
//     INTEL_OPENVINO_DIR (the latter is set by OpenVINO's setupvars script).
//   - The library sub-directories of the default installation roots of the OS (e.g. /opt/intel/openvino*).
//   - The standard library directories of the system (in linux LD_LIBRARY_PATH and the /etc/ld.so.conf file).
package finder

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"k8s.io/klog/v2"
)

const (
	// LibraryPathEnv is the name of the environment variable that overrides the search paths for the library.
	LibraryPathEnv = "OPENVINO_LIBRARY_PATH"

	// InstallDirEnv is the name of the environment variable pointing to an OpenVINO installation root.
	InstallDirEnv = "OPENVINO_INSTALL_DIR"

	// IntelInstallDirEnv is the installation root exported by OpenVINO's own setupvars script.
	IntelInstallDirEnv = "INTEL_OPENVINO_DIR"

	// PluginsXMLEnv is the name of the environment variable that points directly to a plugins.xml file.
	PluginsXMLEnv = "OPENVINO_PLUGINS_XML"

	// PluginsXMLFileName is the name of the device plugins configuration file.
	PluginsXMLFileName = "plugins.xml"
)

// LibraryNames are the base names of OpenVINO's C API library, newest first.
// The 2022+ releases ship "openvino_c", older ones "inference_engine_c_api".
var LibraryNames = []string{"openvino_c", "inference_engine_c_api"}

// SearchPaths returns the directories searched for the library and plugins.xml, in order of priority.
//
// It is recomputed at every call, so changes to the environment variables are picked up.
func SearchPaths() []string {
	if envPaths, found := os.LookupEnv(LibraryPathEnv); found {
		return slices.DeleteFunc(strings.Split(envPaths, string(os.PathListSeparator)), func(p string) bool {
			return p == "" // Remove empty paths.
		})
	}

	var roots []string
	for _, envVar := range []string{InstallDirEnv, IntelInstallDirEnv} {
		if root := os.Getenv(envVar); root != "" {
			roots = append(roots, root)
		}
	}
	roots = append(roots, osDefaultInstallDirs()...)

	var paths []string
	for _, root := range roots {
		for _, subDir := range installLibrarySubDirs {
			paths = append(paths, filepath.Join(root, subDir))
		}
	}
	paths = append(paths, osDefaultLibraryPaths()...)
	return dedup(paths)
}

// LibraryFileName returns the OS specific file name of a library with the given base name:
// e.g. "openvino_c" becomes "libopenvino_c.so" in linux.
func LibraryFileName(name string) string {
	return libraryPrefix + name + librarySuffix
}

// FindLibrary searches for the first library matching one of the given base names (see LibraryFileName)
// in SearchPaths. If no names are given, LibraryNames is used.
//
// Names have priority over paths: all paths are searched for the first name before trying the second.
func FindLibrary(names ...string) (path string, found bool) {
	if len(names) == 0 {
		names = LibraryNames
	}
	searchPaths := SearchPaths()
	for _, name := range names {
		fileName := LibraryFileName(name)
		for _, dir := range searchPaths {
			candidate := filepath.Join(dir, fileName)
			if isFile(candidate) {
				klog.V(1).Infof("found OpenVINO library %q", candidate)
				return candidate, true
			}
		}
	}
	klog.V(1).Infof("OpenVINO library %v not found in %v", names, searchPaths)
	return "", false
}

// FindPluginsXML returns the path to the plugins.xml device configuration file, if one can be found.
//
// If PluginsXMLEnv is set, its value is returned as is, even if the file doesn't exist. Otherwise, it
// looks first next to the library found with FindLibrary, and then on each of the SearchPaths.
//
// Recent OpenVINO releases have the plugins built in and don't ship a plugins.xml, in which case it returns
// found=false, and the runtime should be created with its defaults.
func FindPluginsXML() (path string, found bool) {
	if envPath, found := os.LookupEnv(PluginsXMLEnv); found && envPath != "" {
		return envPath, true
	}
	var dirs []string
	if libPath, found := FindLibrary(); found {
		dirs = append(dirs, filepath.Dir(libPath))
	}
	dirs = append(dirs, SearchPaths()...)
	for _, dir := range dedup(dirs) {
		candidate := filepath.Join(dir, PluginsXMLFileName)
		if isFile(candidate) {
			klog.V(1).Infof("found OpenVINO %s in %q", PluginsXMLFileName, candidate)
			return candidate, true
		}
	}
	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// dedup removes repeated paths, keeping the first occurrence.
func dedup(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	result := make([]string, 0, len(paths))
	for _, p := range paths {
		p = filepath.Clean(p)
		if seen[p] {
			continue
		}
		seen[p] = true
		result = append(result, p)
	}
	return result
}
