//go:build windows

package finder

import (
	"os"
	"path/filepath"
	"strings"

	"k8s.io/klog/v2"
)

const (
	libraryPrefix = ""
	librarySuffix = ".dll"
)

var installLibrarySubDirs = []string{
	`runtime\bin\intel64\Release`,
	`deployment_tools\inference_engine\bin\intel64\Release`,
	`bin`,
}

// osDefaultInstallDirs returns the installation roots used by the OpenVINO Windows installers.
func osDefaultInstallDirs() []string {
	var dirs []string
	for _, base := range []string{os.Getenv("ProgramFiles(x86)"), os.Getenv("ProgramFiles")} {
		if base == "" {
			continue
		}
		versioned, err := filepath.Glob(filepath.Join(base, "Intel", "openvino*"))
		if err != nil {
			klog.Errorf("Failed to list OpenVINO installations in %q: %v", base, err)
			continue
		}
		for ii := len(versioned) - 1; ii >= 0; ii-- {
			dirs = append(dirs, versioned[ii])
		}
	}
	return dirs
}

// osDefaultLibraryPaths returns the absolute entries of PATH, where Windows looks for DLLs.
func osDefaultLibraryPaths() []string {
	var paths []string
	for _, p := range strings.Split(os.Getenv("PATH"), string(os.PathListSeparator)) {
		if p == "" || !filepath.IsAbs(p) {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}
