package store

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdmtools/spanline/pkg/errors"
	"github.com/tdmtools/spanline/pkg/types"
)

const testRoot = "/sys/bus/xbus/devices"

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()

	// xbus-00: full identifier triple, four spans
	require.NoError(t, fs.MkdirAll(testRoot+"/xbus-00", 0755))
	require.NoError(t, afero.WriteFile(fs, testRoot+"/xbus-00/hardware_id",
		[]byte("usb:X1234567\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, testRoot+"/xbus-00/location",
		[]byte("usb-0000:00:1d.7-2\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, testRoot+"/xbus-00/spantype",
		[]byte("1:T1\n2:T1\n3:E1\n4:BRI\n"), 0644))

	// xbus-01: path only, one span
	require.NoError(t, fs.MkdirAll(testRoot+"/xbus-01", 0755))
	require.NoError(t, afero.WriteFile(fs, testRoot+"/xbus-01/spantype",
		[]byte("1:J1\n"), 0644))

	return fs
}

func TestEnumerateDevices(t *testing.T) {
	s := NewSysfsFS(newTestFs(t), testRoot)

	devices, err := s.EnumerateDevices()
	require.NoError(t, err)
	require.Len(t, devices, 2)

	dev := devices[0]
	assert.Equal(t, "xbus-00", dev.Name)
	assert.Equal(t, "usb:X1234567", dev.HardwareID)
	assert.Equal(t, "usb-0000:00:1d.7-2", dev.Location)
	assert.Equal(t, testRoot+"/xbus-00", dev.Path)
	require.Len(t, dev.Spans, 4)
	assert.Equal(t, types.Span{Number: 1, Type: types.LineTypeT1}, dev.Spans[0])
	assert.Equal(t, types.Span{Number: 3, Type: types.LineTypeE1}, dev.Spans[2])

	// Unknown tags collapse to Other and are not eligible
	assert.Equal(t, types.LineTypeOther, dev.Spans[3].Type)
	assert.False(t, dev.Spans[3].Eligible())

	dev = devices[1]
	assert.Equal(t, "xbus-01", dev.Name)
	assert.Empty(t, dev.HardwareID)
	assert.Empty(t, dev.Location)
	require.Len(t, dev.Spans, 1)
}

func TestEnumerateDevicesStoreUnavailable(t *testing.T) {
	s := NewSysfsFS(afero.NewMemMapFs(), "/sys/bus/xbus/devices-missing")

	_, err := s.EnumerateDevices()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeviceEnum))
}

func TestReadSpanType(t *testing.T) {
	s := NewSysfsFS(newTestFs(t), testRoot)
	devices, err := s.EnumerateDevices()
	require.NoError(t, err)

	got, err := s.ReadSpanType(devices[0], 3)
	require.NoError(t, err)
	assert.Equal(t, types.LineTypeE1, got)

	_, err = s.ReadSpanType(devices[0], 9)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeviceRead))
}

func TestWriteSpanType(t *testing.T) {
	fs := newTestFs(t)
	s := NewSysfsFS(fs, testRoot)
	devices, err := s.EnumerateDevices()
	require.NoError(t, err)
	dev := devices[0]

	require.NoError(t, s.WriteSpanType(dev, 2, types.LineTypeE1))

	// The write is visible on a fresh read and other spans are untouched
	got, err := s.ReadSpanType(dev, 2)
	require.NoError(t, err)
	assert.Equal(t, types.LineTypeE1, got)

	got, err = s.ReadSpanType(dev, 1)
	require.NoError(t, err)
	assert.Equal(t, types.LineTypeT1, got)

	data, err := afero.ReadFile(fs, testRoot+"/xbus-00/spantype")
	require.NoError(t, err)
	assert.Equal(t, "1:T1\n2:E1\n3:E1\n4:BRI\n", string(data))
}

func TestWriteSpanTypeErrors(t *testing.T) {
	s := NewSysfsFS(newTestFs(t), testRoot)
	devices, err := s.EnumerateDevices()
	require.NoError(t, err)

	err = s.WriteSpanType(devices[0], 9, types.LineTypeE1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeviceWrite))

	err = s.WriteSpanType(devices[0], 1, types.LineTypeOther)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidOption))
}
