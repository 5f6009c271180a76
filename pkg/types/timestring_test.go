package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("9:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), ts)

	ts, err = NewTimeStringFromString("19:00:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("19:00"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	end, err := TimeString("19:00").AddMinutes(180)
	require.NoError(t, err)
	assert.Equal(t, TimeString("22:00"), end)

	_, err = TimeString("22:00").AddMinutes(180)
	assert.ErrorIs(t, err, ErrOutOfDay)
}

func TestNewTimeStringFromMinutes_Wraps(t *testing.T) {
	assert.Equal(t, TimeString("01:00"), NewTimeStringFromMinutes(25*60))
	assert.Equal(t, TimeString("23:30"), NewTimeStringFromMinutes(-30))
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("22:00"))
	assert.False(t, TimeString("22:00").IsBefore("22:00"))
	assert.True(t, TimeString("22:01").IsAfter("22:00"))
	assert.True(t, TimeString("22:00").Equal("22:00"))
	assert.False(t, TimeString("").IsBefore("10:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	at, err := TimeString("19:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC), at)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 18, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:15"), ts)

	require.NoError(t, ts.Scan([]byte("20:00:00")))
	assert.Equal(t, TimeString("20:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
