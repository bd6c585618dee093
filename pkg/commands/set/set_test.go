package set

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdmtools/spanline/pkg/errors"
	"github.com/tdmtools/spanline/pkg/rules"
	"github.com/tdmtools/spanline/pkg/store"
	"github.com/tdmtools/spanline/pkg/types"
)

func testStore() *store.Memory {
	return store.NewMemory(
		&types.Device{
			Name:       "xbus-00",
			HardwareID: "usb:X1234567",
			Path:       "/sys/bus/xbus/devices/xbus-00",
			Spans: []types.Span{
				{Number: 1, Type: types.LineTypeT1},
				{Number: 2, Type: types.LineTypeT1},
				{Number: 3, Type: types.LineTypeT1},
				{Number: 4, Type: types.LineTypeOther},
			},
		},
		&types.Device{
			Name: "xbus-01",
			Path: "/sys/bus/xbus/devices/xbus-01",
			Spans: []types.Span{
				{Number: 1, Type: types.LineTypeJ1},
			},
		},
	)
}

func testResolver(t *testing.T, input string) *rules.Resolver {
	t.Helper()
	parsed, err := rules.Parse(strings.NewReader(input), "test.conf")
	require.NoError(t, err)
	return rules.NewResolver(parsed)
}

func TestRun(t *testing.T) {
	st := testStore()
	resolver := testResolver(t, `
*                 *:T1
usb:X1234567      3:E1
`)

	result, err := Run(Options{Store: st, Resolver: resolver})
	require.NoError(t, err)
	assert.Zero(t, result.Failures)

	// The Other span is excluded entirely
	require.Len(t, result.Decisions, 4)

	// Spans already at their resolved type are a no-op
	assert.Equal(t, []store.WriteOp{
		{Device: "xbus-00", Span: 3, Type: types.LineTypeE1},
		{Device: "xbus-01", Span: 1, Type: types.LineTypeT1},
	}, st.Writes)

	assert.Equal(t, types.LineTypeE1, st.Devices[0].Spans[2].Type)
	assert.Equal(t, types.LineTypeT1, st.Devices[1].Spans[0].Type)
}

func TestRunNoMatchLeavesSpanUntouched(t *testing.T) {
	st := testStore()
	resolver := testResolver(t, "usb:NOPE* *:E1")

	result, err := Run(Options{Store: st, Resolver: resolver})
	require.NoError(t, err)
	assert.Empty(t, st.Writes)
	for _, d := range result.Decisions {
		assert.False(t, d.Matched)
	}
}

func TestRunDryRun(t *testing.T) {
	st := testStore()
	resolver := testResolver(t, "* *:E1")

	result, err := Run(Options{Store: st, Resolver: resolver, DryRun: true})
	require.NoError(t, err)

	// Everything resolved, nothing written
	assert.Empty(t, st.Writes)
	changed := 0
	for _, d := range result.Decisions {
		require.True(t, d.Matched)
		assert.False(t, d.Applied)
		if d.Changed {
			changed++
		}
	}
	assert.Equal(t, 4, changed)
}

func TestRunWriteFailureIsIsolated(t *testing.T) {
	st := testStore()
	st.FailWrites["xbus-00/1"] = errors.New(errors.ErrDeviceWrite, "span already active")
	resolver := testResolver(t, "* *:E1")

	result, err := Run(Options{Store: st, Resolver: resolver})
	require.NoError(t, err)

	// The rejected span is reported, the rest are still assigned
	assert.Equal(t, 1, result.Failures)
	assert.Equal(t, types.LineTypeT1, st.Devices[0].Spans[0].Type)
	assert.Equal(t, types.LineTypeE1, st.Devices[0].Spans[1].Type)
	assert.Equal(t, types.LineTypeE1, st.Devices[1].Spans[0].Type)

	var failed *Decision
	for i := range result.Decisions {
		if result.Decisions[i].Err != nil {
			failed = &result.Decisions[i]
		}
	}
	require.NotNil(t, failed)
	assert.Equal(t, 1, failed.Span.Number)
	assert.Equal(t, "xbus-00", failed.Device.Name)
}

func TestRunDeviceScope(t *testing.T) {
	st := testStore()
	resolver := testResolver(t, "* *:E1")

	_, err := Run(Options{Store: st, Resolver: resolver, DeviceNames: []string{"xbus-01"}})
	require.NoError(t, err)

	assert.Equal(t, types.LineTypeE1, st.Devices[1].Spans[0].Type)
	assert.Equal(t, types.LineTypeT1, st.Devices[0].Spans[0].Type)
}
