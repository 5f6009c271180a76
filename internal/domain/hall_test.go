package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHall_DerivedValues(t *testing.T) {
	hall := &Hall{ID: 1, Width: 10, Height: 8}
	tables := []*Table{
		{ID: 1, HallID: 1, Capacity: 4, IsActive: true},
		{ID: 2, HallID: 1, Capacity: 6, IsActive: false},
		{ID: 3, HallID: 2, Capacity: 12, IsActive: true},
	}

	assert.Equal(t, 10, hall.TotalCapacity(tables))
	assert.Equal(t, 1, hall.ActiveTablesCount(tables))
}

func TestTable_FitsInto(t *testing.T) {
	hall := &Hall{ID: 1, Width: 3, Height: 2}

	assert.True(t, (&Table{HallID: 1, XPosition: 2, YPosition: 1}).FitsInto(hall))
	assert.False(t, (&Table{HallID: 1, XPosition: 3, YPosition: 0}).FitsInto(hall))
	assert.False(t, (&Table{HallID: 1, XPosition: 0, YPosition: 2}).FitsInto(hall))
	assert.False(t, (&Table{HallID: 2, XPosition: 0, YPosition: 0}).FitsInto(hall))
}

func TestTable_CanSeat(t *testing.T) {
	table := &Table{Capacity: 4}
	assert.True(t, table.CanSeat(4))
	assert.False(t, table.CanSeat(5))
	assert.False(t, table.CanSeat(0))
}

func TestSortTablesByNumber(t *testing.T) {
	tables := []*Table{{Number: "10"}, {Number: "2"}, {Number: "VIP"}, {Number: "1"}, {Number: "A"}}

	SortTablesByNumber(tables)

	numbers := make([]string, len(tables))
	for i, table := range tables {
		numbers[i] = table.Number
	}
	assert.Equal(t, []string{"1", "2", "10", "A", "VIP"}, numbers)
}

func TestActor_CanAccess(t *testing.T) {
	r := &Reservation{UserID: 5}

	assert.True(t, Actor{UserID: 5, Role: RoleGuest}.CanAccess(r))
	assert.False(t, Actor{UserID: 6, Role: RoleGuest}.CanAccess(r))
	assert.True(t, Actor{UserID: 6, Role: RoleStaff}.CanAccess(r))
}
