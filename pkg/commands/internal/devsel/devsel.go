// Package devsel narrows an enumerated device list to an explicit subset
package devsel

import (
	"github.com/tdmtools/spanline/pkg/errors"
	"github.com/tdmtools/spanline/pkg/types"
)

// Select filters devices by name, preserving discovery order. An empty name
// list selects everything; a name that matches no device is an error,
// reported before any device is touched.
func Select(devices []*types.Device, names []string) ([]*types.Device, error) {
	if len(names) == 0 {
		return devices, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var selected []*types.Device
	for _, dev := range devices {
		if wanted[dev.Name] {
			selected = append(selected, dev)
			delete(wanted, dev.Name)
		}
	}
	for name := range wanted {
		return nil, errors.Newf(errors.ErrInvalidOption, "unknown device %q", name)
	}
	return selected, nil
}
