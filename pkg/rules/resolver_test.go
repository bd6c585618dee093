package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdmtools/spanline/pkg/types"
)

func mustParse(t *testing.T, input string) *Resolver {
	t.Helper()
	rules, err := Parse(strings.NewReader(input), "test.conf")
	require.NoError(t, err)
	return NewResolver(rules)
}

func TestResolveLastMatchWins(t *testing.T) {
	dev := &types.Device{
		Name:       "xbus-00",
		HardwareID: "usb:X1234567",
		Location:   "usb-0000:00:1d.7-2",
		Path:       "/sys/bus/xbus/devices/xbus-00",
	}

	resolver := mustParse(t, `
*                 *:T1
usb:X1234567      [34]:E1
`)

	// The override applies to spans 3 and 4
	got, ok := resolver.Resolve(dev, types.Span{Number: 3, Type: types.LineTypeT1})
	require.True(t, ok)
	assert.Equal(t, types.LineTypeE1, got)

	// Span 1 only matches the wildcard
	got, ok = resolver.Resolve(dev, types.Span{Number: 1, Type: types.LineTypeT1})
	require.True(t, ok)
	assert.Equal(t, types.LineTypeT1, got)

	// Reversed order flips the span-3 result: ordering is load-bearing
	reversed := mustParse(t, `
usb:X1234567      [34]:E1
*                 *:T1
`)
	got, ok = reversed.Resolve(dev, types.Span{Number: 3, Type: types.LineTypeT1})
	require.True(t, ok)
	assert.Equal(t, types.LineTypeT1, got)
}

func TestResolveScansAllRules(t *testing.T) {
	// A naive first-match implementation would stop at the wildcard and
	// never see the later, more specific rule
	dev := &types.Device{Name: "xbus-00", Path: "/devices/xbus-00"}

	resolver := mustParse(t, `
*        *:T1
*        *:J1
*        2:E1
`)

	got, ok := resolver.Resolve(dev, types.Span{Number: 1})
	require.True(t, ok)
	assert.Equal(t, types.LineTypeJ1, got)

	got, ok = resolver.Resolve(dev, types.Span{Number: 2})
	require.True(t, ok)
	assert.Equal(t, types.LineTypeE1, got)
}

func TestResolveIdentifierIndependence(t *testing.T) {
	// A device with only a path still resolves against a path rule
	dev := &types.Device{Name: "xbus-01", Path: "/sys/bus/xbus/devices/xbus-01"}

	resolver := mustParse(t, `/sys/bus/xbus/devices/xbus-01 *:J1`)

	got, ok := resolver.Resolve(dev, types.Span{Number: 1})
	require.True(t, ok)
	assert.Equal(t, types.LineTypeJ1, got)
}

func TestResolveMatchesAnyIdentifierField(t *testing.T) {
	dev := &types.Device{
		Name:       "xbus-00",
		HardwareID: "usb:X1234567",
		Location:   "usb-0000:00:1d.7-2",
		Path:       "/sys/bus/xbus/devices/xbus-00",
	}

	tests := []struct {
		name  string
		rules string
	}{
		{"hardware id", "usb:X* *:E1"},
		{"location with @ prefix", "@usb-0000:00:1d.7-2 *:E1"},
		{"path", "/sys/bus/xbus/devices/xbus-0? *:E1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := mustParse(t, tt.rules)
			got, ok := resolver.Resolve(dev, types.Span{Number: 2})
			require.True(t, ok)
			assert.Equal(t, types.LineTypeE1, got)
		})
	}
}

func TestResolveNoMatch(t *testing.T) {
	dev := &types.Device{Name: "xbus-00", Path: "/devices/xbus-00"}

	// Empty rule sequence
	_, ok := NewResolver(nil).Resolve(dev, types.Span{Number: 1})
	assert.False(t, ok)

	// Non-matching identifier
	resolver := mustParse(t, "usb:* *:E1")
	_, ok = resolver.Resolve(dev, types.Span{Number: 1})
	assert.False(t, ok)

	// Matching identifier but non-matching span
	resolver = mustParse(t, "* [34]:E1")
	_, ok = resolver.Resolve(dev, types.Span{Number: 1})
	assert.False(t, ok)
}

func TestResolveLocationNeedsAtPrefix(t *testing.T) {
	dev := &types.Device{
		Name:     "xbus-00",
		Location: "usb-0000:00:1d.7-2",
		Path:     "/devices/xbus-00",
	}

	// A bare location pattern without the @ prefix must not match
	resolver := mustParse(t, "usb-0000:00:1d.7-2 *:E1")
	_, ok := resolver.Resolve(dev, types.Span{Number: 1})
	assert.False(t, ok)
}
