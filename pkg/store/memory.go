package store

import (
	"fmt"

	"github.com/tdmtools/spanline/pkg/errors"
	"github.com/tdmtools/spanline/pkg/types"
)

// WriteOp records one WriteSpanType call made against a Memory store
type WriteOp struct {
	Device string
	Span   int
	Type   types.LineType
}

// Memory is an in-memory attribute store for tests. Writes mutate the held
// devices and are recorded; individual spans can be set up to reject writes.
type Memory struct {
	Devices []*types.Device

	// FailWrites maps "<device-name>/<span>" to the error the driver
	// would return for that write
	FailWrites map[string]error

	// Writes collects every accepted write in order
	Writes []WriteOp
}

// NewMemory creates a memory store over the given devices
func NewMemory(devices ...*types.Device) *Memory {
	return &Memory{
		Devices:    devices,
		FailWrites: make(map[string]error),
	}
}

// EnumerateDevices returns the held devices
func (m *Memory) EnumerateDevices() ([]*types.Device, error) {
	return m.Devices, nil
}

// ReadSpanType reads the current type of one span
func (m *Memory) ReadSpanType(dev *types.Device, span int) (types.LineType, error) {
	d := m.find(dev)
	if d == nil {
		return "", errors.Newf(errors.ErrDeviceRead, "unknown device %s", dev.Name)
	}
	for _, sp := range d.Spans {
		if sp.Number == span {
			return sp.Type, nil
		}
	}
	return "", errors.Newf(errors.ErrDeviceRead,
		"device %s has no span %d", dev.Name, span)
}

// WriteSpanType assigns a new type to one span
func (m *Memory) WriteSpanType(dev *types.Device, span int, t types.LineType) error {
	key := fmt.Sprintf("%s/%d", dev.Name, span)
	if err, ok := m.FailWrites[key]; ok {
		return errors.Wrapf(err, errors.ErrDeviceWrite,
			"device %s: span %d write rejected", dev.Name, span)
	}
	d := m.find(dev)
	if d == nil {
		return errors.Newf(errors.ErrDeviceWrite, "unknown device %s", dev.Name)
	}
	for i := range d.Spans {
		if d.Spans[i].Number == span {
			d.Spans[i].Type = t
			m.Writes = append(m.Writes, WriteOp{Device: d.Name, Span: span, Type: t})
			return nil
		}
	}
	return errors.Newf(errors.ErrDeviceWrite,
		"device %s has no span %d", dev.Name, span)
}

func (m *Memory) find(dev *types.Device) *types.Device {
	for _, d := range m.Devices {
		if d.Name == dev.Name {
			return d
		}
	}
	return nil
}
