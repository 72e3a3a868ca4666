package main

import (
	"bytes"
	"os"

	"github.com/gomlx/goopenvino/openvino"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Manifest lists the models to check, and how.
//
// Example:
//
//	library: /opt/intel/openvino/runtime/lib/intel64/libopenvino_c.so
//	models:
//	  - model: resnet50.xml
//	    weights: resnet50.bin
//	    devices: [CPU, GPU]
//	    config:
//	      INFERENCE_NUM_THREADS: 4
//	  - model: mobilenet.xml
//	    from_memory: true
type Manifest struct {
	// Library is the path to the OpenVINO C API library. If empty it is searched.
	Library string `yaml:"library"`

	// PluginsXML is the plugins configuration file passed to the Core. If nil it is searched.
	PluginsXML *string `yaml:"plugins_xml"`

	Models []ModelCheck `yaml:"models"`
}

// ModelCheck describes one model to read and load.
type ModelCheck struct {
	Model      string             `yaml:"model"`
	Weights    string             `yaml:"weights"`
	FromMemory bool               `yaml:"from_memory"`
	Devices    []string           `yaml:"devices"`
	Config     openvino.ConfigMap `yaml:"config"`
}

// LoadManifest reads and validates the manifest in filePath.
func LoadManifest(filePath string) (*Manifest, error) {
	contents, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest")
	}
	m, err := ParseManifest(contents)
	if err != nil {
		return nil, errors.WithMessagef(err, "manifest %q", filePath)
	}
	return m, nil
}

// ParseManifest parses the YAML contents of a manifest, and fills in the defaults.
func ParseManifest(contents []byte) (*Manifest, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(contents))
	decoder.KnownFields(true)
	m := &Manifest{}
	if err := decoder.Decode(m); err != nil {
		return nil, errors.Wrapf(err, "failed to parse manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the manifest can be run, and fills in the defaults.
func (m *Manifest) Validate() error {
	if len(m.Models) == 0 {
		return errors.New("manifest has no models")
	}
	for ii := range m.Models {
		check := &m.Models[ii]
		if check.Model == "" {
			return errors.Errorf("models[%d] has no model path", ii)
		}
		if check.FromMemory && check.Weights == "" {
			return errors.Errorf("models[%d] (%s): weights must be given to read from memory", ii, check.Model)
		}
		if len(check.Devices) == 0 {
			check.Devices = []string{defaultDevice}
		}
	}
	return nil
}
