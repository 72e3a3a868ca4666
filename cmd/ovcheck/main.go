// ovcheck is a smoke-test program for an OpenVINO installation: it creates a Core, reads one or more models,
// and loads them on the requested devices.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gomlx/goopenvino/openvino"
	"github.com/gomlx/goopenvino/openvino/finder"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

const defaultDevice = "CPU"

var (
	flagLibrary       = flag.String("library", "", "Path to the OpenVINO C API library. If empty it is searched, see -paths")
	flagConfig        = flag.String("config", "", "Plugins configuration file (plugins.xml). If empty it is searched")
	flagModel         = flag.String("model", "", "Model file, e.g. in OpenVINO IR format (.xml)")
	flagWeights       = flag.String("weights", "", "Weights file (.bin). If empty OpenVINO looks for it next to the model")
	flagDevices       = flag.String("device", defaultDevice, "Comma separated list of devices to load the model on")
	flagFromMemory    = flag.Bool("from_memory", false, "Read the model and weights into memory and create the network from there")
	flagManifest      = flag.String("manifest", "", "YAML file with a list of models to check, instead of -model")
	flagPaths         = flag.Bool("paths", false, "Print the paths searched for the OpenVINO library and exit")
	flagSuppressNoise = flag.Bool("suppress_native_logging", true, "Suppress logging from the OpenVINO plugins -- generally it's just noise")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `ovcheck checks that an OpenVINO installation can read and load models.

$ ovcheck -model=<model.xml> [-weights=<model.bin>] [-device=CPU,GPU]
$ ovcheck -manifest=<manifest.yaml>

Usage:
`)
		flag.PrintDefaults()
	}
	klog.InitFlags(flag.CommandLine)
	flag.Parse()

	if *flagPaths {
		for _, p := range finder.SearchPaths() {
			fmt.Println(p)
		}
		return
	}

	var manifest *Manifest
	switch {
	case *flagManifest != "":
		manifest = must.M1(LoadManifest(*flagManifest))
	case *flagModel != "":
		manifest = &Manifest{
			Models: []ModelCheck{{
				Model:      *flagModel,
				Weights:    *flagWeights,
				FromMemory: *flagFromMemory,
				Devices:    strings.Split(*flagDevices, ","),
			}},
		}
		if err := manifest.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid flags: %v\n\n", err)
			flag.Usage()
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Either -model or -manifest must be given!")
		fmt.Fprintln(os.Stderr)
		flag.Usage()
		os.Exit(1)
	}
	if *flagLibrary != "" {
		manifest.Library = *flagLibrary
	}
	if *flagConfig != "" {
		manifest.PluginsXML = flagConfig
	}

	must.M(openvino.LoadRuntime(manifest.Library))
	version := must.M1(openvino.Version())
	fmt.Printf("OpenVINO %s loaded from %s\n", version, openvino.RuntimePath())

	var core *openvino.Core
	newCore := func() {
		if manifest.PluginsXML != nil {
			core = must.M1(openvino.NewCoreWithConfig(*manifest.PluginsXML))
		} else {
			core = must.M1(openvino.NewCore())
		}
	}
	if *flagSuppressNoise {
		openvino.SuppressNativeLogging(newCore)
	} else {
		newCore()
	}
	defer core.Destroy()
	fmt.Printf("%s\n", core)

	failures := 0
	for _, check := range manifest.Models {
		failures += checkModel(core, check)
	}
	if failures > 0 {
		fmt.Printf("%d check(s) failed\n", failures)
		os.Exit(1)
	}
}

// checkModel reads the model and loads it on each device, and returns the number of failures.
func checkModel(core *openvino.Core, check ModelCheck) (failures int) {
	var network *openvino.Network
	var err error
	if check.FromMemory {
		model := must.M1(os.ReadFile(check.Model))
		weights := must.M1(os.ReadFile(check.Weights))
		network, err = core.ReadNetworkFromBuffer(model, weights)
	} else {
		network, err = core.ReadNetworkFromFile(check.Model, check.Weights)
	}
	if err != nil {
		fmt.Printf("✗ %s: %v\n", check.Model, err)
		klog.V(1).Infof("%+v", err)
		return 1
	}
	defer network.Destroy()

	for _, device := range check.Devices {
		device = strings.TrimSpace(device)
		var exec *openvino.ExecutableNetwork
		load := func() { exec, err = core.LoadNetworkWithConfig(network, device, check.Config) }
		if *flagSuppressNoise {
			openvino.SuppressNativeLogging(load)
		} else {
			load()
		}
		if err != nil {
			fmt.Printf("✗ %s on %s: %v\n", check.Model, device, err)
			klog.V(1).Infof("%+v", err)
			failures++
			continue
		}
		fmt.Printf("✓ %s on %s\n", check.Model, device)
		exec.Destroy()
	}
	return
}
