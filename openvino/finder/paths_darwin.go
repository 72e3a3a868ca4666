//go:build darwin

package finder

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"k8s.io/klog/v2"
)

const (
	libraryPrefix = "lib"
	librarySuffix = ".dylib"
)

var installLibrarySubDirs = []string{
	"runtime/lib/intel64/Release",
	"runtime/lib/arm64/Release",
	"deployment_tools/inference_engine/lib/intel64",
	"lib",
}

// osDefaultInstallDirs returns the installation roots used by the OpenVINO archives and Homebrew.
func osDefaultInstallDirs() []string {
	dirs := []string{"/opt/intel/openvino"}
	versioned, err := filepath.Glob("/opt/intel/openvino_*")
	if err != nil {
		klog.Errorf("Failed to list versioned OpenVINO installations in /opt/intel: %v", err)
	}
	for ii := len(versioned) - 1; ii >= 0; ii-- {
		dirs = append(dirs, versioned[ii])
	}
	return append(dirs, "/opt/homebrew", "/usr/local")
}

// osDefaultLibraryPaths returns the absolute entries of DYLD_LIBRARY_PATH and LD_LIBRARY_PATH.
func osDefaultLibraryPaths() []string {
	var paths []string
	for _, varName := range []string{"DYLD_LIBRARY_PATH", "LD_LIBRARY_PATH"} {
		for _, ldPath := range strings.Split(os.Getenv(varName), string(os.PathListSeparator)) {
			if ldPath == "" || !path.IsAbs(ldPath) {
				// No empty or relative paths.
				continue
			}
			paths = append(paths, ldPath)
		}
	}
	return paths
}
