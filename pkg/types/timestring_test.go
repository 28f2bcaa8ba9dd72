package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("24:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("9:30am")
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("22:00")
	require.NoError(t, err)

	next, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "23:00", next.String())

	_, err = ts.AddMinutes(180)
	assert.Error(t, err, "crossing midnight is not supported")
}

func TestTimeString_Ordering(t *testing.T) {
	a, err := NewTimeStringFromString("06:00")
	require.NoError(t, err)
	b, err := NewTimeStringFromString("23:00")
	require.NoError(t, err)

	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := NewTimeStringFromString("10:45")
	require.NoError(t, err)

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 645, minutes)
}
