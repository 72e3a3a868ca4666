package finder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// touch creates an empty file, and the directories leading to it.
func touch(t *testing.T, path string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestSearchPaths_EnvOverride(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	sep := string(os.PathListSeparator)
	t.Setenv(LibraryPathEnv, dirA+sep+sep+dirB)
	require.Equal(t, []string{dirA, dirB}, SearchPaths())
}

func TestSearchPaths_InstallDir(t *testing.T) {
	t.Setenv(LibraryPathEnv, "")
	require.NoError(t, os.Unsetenv(LibraryPathEnv))
	root := t.TempDir()
	t.Setenv(InstallDirEnv, root)
	paths := SearchPaths()
	require.NotEmpty(t, paths)
	require.True(t, strings.HasPrefix(paths[0], root), "install dir should be searched first, got %v", paths)
}

func TestFindLibrary(t *testing.T) {
	dirOld, dirNew := t.TempDir(), t.TempDir()
	t.Setenv(LibraryPathEnv, dirOld+string(os.PathListSeparator)+dirNew)

	_, found := FindLibrary()
	require.False(t, found)

	oldLib := filepath.Join(dirOld, LibraryFileName("inference_engine_c_api"))
	touch(t, oldLib)
	path, found := FindLibrary()
	require.True(t, found)
	require.Equal(t, oldLib, path)

	// Newer library name has priority, even if in a later directory.
	newLib := filepath.Join(dirNew, LibraryFileName("openvino_c"))
	touch(t, newLib)
	path, found = FindLibrary()
	require.True(t, found)
	require.Equal(t, newLib, path)

	// Directories are not libraries.
	require.NoError(t, os.MkdirAll(filepath.Join(dirOld, LibraryFileName("milliways")), 0o755))
	_, found = FindLibrary("milliways")
	require.False(t, found)
}

func TestFindPluginsXML(t *testing.T) {
	libDir, otherDir := t.TempDir(), t.TempDir()
	t.Setenv(LibraryPathEnv, otherDir+string(os.PathListSeparator)+libDir)
	t.Setenv(PluginsXMLEnv, "")

	_, found := FindPluginsXML()
	require.False(t, found)

	// plugins.xml in any search path.
	otherXML := filepath.Join(otherDir, PluginsXMLFileName)
	touch(t, otherXML)
	path, found := FindPluginsXML()
	require.True(t, found)
	require.Equal(t, otherXML, path)

	// Next to the library takes priority.
	touch(t, filepath.Join(libDir, LibraryFileName(LibraryNames[0])))
	libXML := filepath.Join(libDir, PluginsXMLFileName)
	touch(t, libXML)
	path, found = FindPluginsXML()
	require.True(t, found)
	require.Equal(t, libXML, path)

	// Environment variable wins, even if it doesn't exist.
	t.Setenv(PluginsXMLEnv, "/nonexistent/plugins.xml")
	path, found = FindPluginsXML()
	require.True(t, found)
	require.Equal(t, "/nonexistent/plugins.xml", path)
}
