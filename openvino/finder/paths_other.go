//go:build !linux && !darwin && !windows

package finder

import (
	"os"
	"path"
	"strings"
)

const (
	libraryPrefix = "lib"
	librarySuffix = ".so"
)

var installLibrarySubDirs = []string{"runtime/lib/intel64", "lib"}

func osDefaultInstallDirs() []string {
	return []string{"/opt/intel/openvino", "/usr/local"}
}

func osDefaultLibraryPaths() []string {
	var paths []string
	for _, ldPath := range strings.Split(os.Getenv("LD_LIBRARY_PATH"), ":") {
		if ldPath == "" || !path.IsAbs(ldPath) {
			continue
		}
		paths = append(paths, ldPath)
	}
	return paths
}
