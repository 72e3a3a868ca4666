package openvino

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// NumThreadsKey is the configuration key for the number of threads used by the device for inference.
	NumThreadsKey = "INFERENCE_NUM_THREADS"

	// defaultNumThreads is the only option LoadNetwork passes to the device.
	//
	// Known limitation: it is not tuned to the machine. Use LoadNetworkWithConfig to set it.
	defaultNumThreads = 1
)

// ConfigMap maps OpenVINO configuration keys (e.g. NumThreadsKey, "PERFORMANCE_HINT") to their values.
//
// OpenVINO takes all values as strings. Values of type string, bool (converted to "YES"/"NO"), int, int32,
// int64, uint, uint32, uint64, float32 and float64 are supported.
type ConfigMap map[string]any

// defaultLoadConfig is the configuration used by LoadNetwork.
func defaultLoadConfig() ConfigMap {
	return ConfigMap{NumThreadsKey: defaultNumThreads}
}

// configEntry is one name/value pair passed to the native ie_config_t list.
type configEntry struct {
	name, value string
}

// entries converts the map to a list of name/value pairs, sorted by name so the order is deterministic.
func (m ConfigMap) entries() ([]configEntry, error) {
	entries := make([]configEntry, 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if name == "" || strings.IndexByte(name, 0) >= 0 {
			return nil, errors.Errorf("invalid OpenVINO configuration key %q", name)
		}
		value, err := configValueToString(m[name])
		if err != nil {
			return nil, errors.WithMessagef(err, "OpenVINO configuration key %q", name)
		}
		entries = append(entries, configEntry{name: name, value: value})
	}
	return entries, nil
}

func configValueToString(anyValue any) (string, error) {
	switch value := anyValue.(type) {
	case string:
		if strings.IndexByte(value, 0) >= 0 {
			return "", errors.Errorf("value %q contains a NUL character", value)
		}
		return value, nil
	case bool:
		if value {
			return "YES", nil
		}
		return "NO", nil
	case int:
		return strconv.Itoa(value), nil
	case int32:
		return strconv.FormatInt(int64(value), 10), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	case uint:
		return strconv.FormatUint(uint64(value), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(value), 10), nil
	case uint64:
		return strconv.FormatUint(value, 10), nil
	case float32:
		return strconv.FormatFloat(float64(value), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64), nil
	default:
		return "", errors.Errorf("unsupported value type %T", anyValue)
	}
}
