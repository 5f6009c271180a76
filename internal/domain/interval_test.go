package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

var june1 = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2024, 6, 1, hour, minute, 0, 0, time.UTC)
}

func TestEndOf(t *testing.T) {
	assert.Equal(t, types.TimeString("22:00"), EndOf(june1, "19:00", 3*time.Hour))
	assert.Equal(t, types.TimeString("23:00"), EndOf(june1, "22:00", time.Hour))
	// переход через полночь допустим в представлении
	assert.Equal(t, types.TimeString("01:00"), EndOf(june1, "22:00", 3*time.Hour))
	assert.Equal(t, types.TimeString(""), EndOf(june1, "bad", time.Hour))
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name         string
		startA, endA time.Time
		startB, endB time.Time
		want         bool
	}{
		{"inside", at(18, 0), at(21, 0), at(19, 0), at(20, 0), true},
		{"partial", at(18, 0), at(21, 0), at(19, 0), at(22, 0), true},
		{"same", at(19, 0), at(22, 0), at(19, 0), at(22, 0), true},
		{"touching end to start", at(18, 0), at(21, 0), at(21, 0), at(23, 0), false},
		{"touching start to end", at(22, 0), at(23, 0), at(19, 0), at(22, 0), false},
		{"disjoint", at(10, 0), at(11, 0), at(12, 0), at(13, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.startA, tc.endA, tc.startB, tc.endB))
			// симметричность
			assert.Equal(t, tc.want, Overlaps(tc.startB, tc.endB, tc.startA, tc.endA))
		})
	}
}

func TestNewInterval_CrossesMidnight(t *testing.T) {
	late, err := NewInterval(june1, "22:00", 3*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 2, 1, 0, 0, 0, time.UTC), late.End)

	early, err := NewInterval(june1, "19:00", 3*time.Hour)
	require.NoError(t, err)
	assert.False(t, early.Overlaps(late))

	overlapping, err := NewInterval(june1, "21:30", time.Hour)
	require.NoError(t, err)
	assert.True(t, overlapping.Overlaps(late))
}

func TestReservation_EndTimeIsDerived(t *testing.T) {
	r := &Reservation{Date: june1, StartTime: "19:00", DurationMinutes: 180}
	assert.Equal(t, types.TimeString("22:00"), r.EndTime())

	r.DurationMinutes = 300
	assert.Equal(t, types.TimeString("00:00"), r.EndTime())

	r.StartTime = "12:00"
	assert.Equal(t, types.TimeString("17:00"), r.EndTime())
}

func TestReservationStatus(t *testing.T) {
	assert.True(t, StatusConfirmed.HoldsSlot())
	assert.True(t, StatusCompleted.HoldsSlot())
	assert.False(t, StatusPending.HoldsSlot())
	assert.False(t, StatusCanceled.HoldsSlot())

	assert.True(t, StatusCanceled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())

	assert.False(t, ReservationStatus("archived").IsValid())
}

func TestReservation_Clone(t *testing.T) {
	event := "birthday"
	staff := int64(9)
	r := &Reservation{ID: 1, Event: &event, StaffUserID: &staff}

	c := r.Clone()
	*c.Event = "wedding"
	*c.StaffUserID = 10

	assert.Equal(t, "birthday", *r.Event)
	assert.Equal(t, int64(9), *r.StaffUserID)
}
