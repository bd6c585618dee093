// Package types holds the shared domain types for spanline: devices, spans,
// line-protocol types, and the attribute store interface that abstracts the
// underlying telephony driver.
package types

import (
	"github.com/tdmtools/spanline/pkg/errors"
)

// LineType is the line-protocol framing mode of a span
type LineType string

const (
	LineTypeE1 LineType = "E1"
	LineTypeT1 LineType = "T1"
	LineTypeJ1 LineType = "J1"

	// LineTypeOther marks spans whose current tag is not one of the three
	// assignable framing modes. Such spans are never matched or reassigned.
	LineTypeOther LineType = "Other"
)

// Assignable reports whether t is a valid assignment target
func (t LineType) Assignable() bool {
	switch t {
	case LineTypeE1, LineTypeT1, LineTypeJ1:
		return true
	}
	return false
}

// ParseLineType parses a user-supplied line type. Only the three assignable
// types are accepted.
func ParseLineType(s string) (LineType, error) {
	t := LineType(s)
	if !t.Assignable() {
		return "", errors.Newf(errors.ErrInvalidOption,
			"invalid line type %q (must be E1, T1 or J1)", s)
	}
	return t, nil
}

// LineTypeFromTag maps a raw driver tag to a LineType, collapsing anything
// that is not an assignable type to LineTypeOther.
func LineTypeFromTag(tag string) LineType {
	t := LineType(tag)
	if t.Assignable() {
		return t
	}
	return LineTypeOther
}

// Span is one discrete communication channel on a device
type Span struct {
	Number int
	Type   LineType
}

// Eligible reports whether the span can participate in assignment
func (s Span) Eligible() bool {
	return s.Type.Assignable()
}

// Device is an immutable snapshot of one hardware device and its spans.
// Path is always present and unique; HardwareID and Location may be empty.
type Device struct {
	// Name is the device directory name under the store root
	Name string

	// HardwareID is the driver-reported hardware serial, e.g. "usb:X1234567"
	HardwareID string

	// Location is the physical connector position, matched as "@<location>"
	Location string

	// Path is the full device path in the store
	Path string

	// Spans are the device's spans in driver order
	Spans []Span
}

// Identifiers returns the candidate identifier strings rules are matched
// against: hardware id and @-prefixed location when present, path always.
func (d *Device) Identifiers() []string {
	ids := make([]string, 0, 3)
	if d.HardwareID != "" {
		ids = append(ids, d.HardwareID)
	}
	if d.Location != "" {
		ids = append(ids, "@"+d.Location)
	}
	ids = append(ids, d.Path)
	return ids
}

// IdentifierKey selects which identifier field dumpconfig renders for a device
type IdentifierKey string

const (
	KeyHardwareID IdentifierKey = "hwid"
	KeyLocation   IdentifierKey = "location"
	KeyPath       IdentifierKey = "path"
)

// ParseIdentifierKey parses a user-supplied identifier key
func ParseIdentifierKey(s string) (IdentifierKey, error) {
	switch IdentifierKey(s) {
	case KeyHardwareID, KeyLocation, KeyPath:
		return IdentifierKey(s), nil
	}
	return "", errors.Newf(errors.ErrInvalidOption,
		"invalid identifier key %q (must be hwid, location or path)", s)
}

// DisplayIdentifier returns the identifier field to render for the device.
// The preferred key is tried first, then the remaining fields in the fixed
// order hardware id, location, path. Path is always available.
func (d *Device) DisplayIdentifier(key IdentifierKey) string {
	order := []IdentifierKey{KeyHardwareID, KeyLocation, KeyPath}
	if key != "" {
		reordered := []IdentifierKey{key}
		for _, k := range order {
			if k != key {
				reordered = append(reordered, k)
			}
		}
		order = reordered
	}
	for _, k := range order {
		switch k {
		case KeyHardwareID:
			if d.HardwareID != "" {
				return d.HardwareID
			}
		case KeyLocation:
			if d.Location != "" {
				return "@" + d.Location
			}
		case KeyPath:
			if d.Path != "" {
				return d.Path
			}
		}
	}
	return d.Path
}

// DriftRecord captures one span whose live type disagrees with the type the
// rule file resolves for it. Collected in memory per run, never persisted.
type DriftRecord struct {
	Device     *Device
	Span       Span
	Configured LineType
	Live       LineType
}

// Store is the attribute store adapter: the single collaborator that exposes
// device state and accepts span type writes.
type Store interface {
	// EnumerateDevices returns a snapshot of all devices with their spans,
	// in discovery order.
	EnumerateDevices() ([]*Device, error)

	// ReadSpanType reads the current live type of one span
	ReadSpanType(dev *Device, span int) (LineType, error)

	// WriteSpanType assigns a new type to one span. The driver rejects
	// writes to spans that are already active.
	WriteSpanType(dev *Device, span int, t LineType) error
}
