package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gomlx/goopenvino/openvino"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(`
library: /opt/openvino/libopenvino_c.so
plugins_xml: ""
models:
  - model: resnet.xml
    weights: resnet.bin
    devices: [CPU, GPU]
    config:
      INFERENCE_NUM_THREADS: 4
      ENABLE_PROFILING: true
  - model: mobilenet.xml
    weights: mobilenet.bin
    from_memory: true
`))
	require.NoError(t, err)
	require.Equal(t, "/opt/openvino/libopenvino_c.so", m.Library)
	require.NotNil(t, m.PluginsXML)
	require.Equal(t, "", *m.PluginsXML)
	require.Len(t, m.Models, 2)
	require.Equal(t, []string{"CPU", "GPU"}, m.Models[0].Devices)
	require.Equal(t, openvino.ConfigMap{openvino.NumThreadsKey: 4, "ENABLE_PROFILING": true}, m.Models[0].Config)
	require.True(t, m.Models[1].FromMemory)
	require.Equal(t, []string{defaultDevice}, m.Models[1].Devices)
}

func TestParseManifest_Errors(t *testing.T) {
	_, err := ParseManifest([]byte(`models: []`))
	require.ErrorContains(t, err, "no models")
	_, err = ParseManifest([]byte("models:\n  - weights: a.bin\n"))
	require.ErrorContains(t, err, "no model path")
	_, err = ParseManifest([]byte("models:\n  - model: a.xml\n    from_memory: true\n"))
	require.ErrorContains(t, err, "weights must be given")
	_, err = ParseManifest([]byte("models:\n  - model: a.xml\n    device: CPU\n"))
	require.ErrorContains(t, err, "field device not found")
}

func TestLoadManifest(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte("models:\n  - model: a.xml\n"), 0o644))
	m, err := LoadManifest(filePath)
	require.NoError(t, err)
	require.Nil(t, m.PluginsXML)
	require.Equal(t, "a.xml", m.Models[0].Model)

	_, err = LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestManifest_Validate(t *testing.T) {
	// As built from the command line flags: -from_memory without -weights.
	m := &Manifest{Models: []ModelCheck{{Model: "a.xml", FromMemory: true, Devices: []string{defaultDevice}}}}
	require.ErrorContains(t, m.Validate(), "weights must be given")

	m = &Manifest{Models: []ModelCheck{{Model: "a.xml", Weights: "a.bin", FromMemory: true}}}
	require.NoError(t, m.Validate())
	require.Equal(t, []string{defaultDevice}, m.Models[0].Devices)
}
