package devsel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdmtools/spanline/pkg/errors"
	"github.com/tdmtools/spanline/pkg/types"
)

func TestSelect(t *testing.T) {
	devices := []*types.Device{
		{Name: "xbus-00"},
		{Name: "xbus-01"},
		{Name: "xbus-02"},
	}

	// Empty selection means everything
	got, err := Select(devices, nil)
	require.NoError(t, err)
	assert.Equal(t, devices, got)

	// Discovery order is preserved regardless of argument order
	got, err = Select(devices, []string{"xbus-02", "xbus-00"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "xbus-00", got[0].Name)
	assert.Equal(t, "xbus-02", got[1].Name)
}

func TestSelectUnknownDevice(t *testing.T) {
	devices := []*types.Device{{Name: "xbus-00"}}

	_, err := Select(devices, []string{"xbus-00", "xbus-09"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidOption))
	assert.Contains(t, err.Error(), "xbus-09")
}
