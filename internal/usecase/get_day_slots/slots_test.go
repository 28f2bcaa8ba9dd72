package get_day_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Turf-BookingService/internal/domain"
	"github.com/m04kA/Turf-BookingService/pkg/types"
)

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	parsed, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return parsed
}

func TestGenerateSlotGrid(t *testing.T) {
	grid, err := generateSlotGrid(ts(t, "06:00"), ts(t, "23:00"), 60)
	require.NoError(t, err)

	require.Len(t, grid, 17)
	assert.Equal(t, "06:00", grid[0].String())
	assert.Equal(t, "22:00", grid[len(grid)-1].String())
}

func TestGenerateSlotGrid_PartialSlotDropped(t *testing.T) {
	// 90-минутные слоты с 06:00 до 23:00: последний целиком
	// помещающийся слот начинается в 21:00
	grid, err := generateSlotGrid(ts(t, "06:00"), ts(t, "23:00"), 90)
	require.NoError(t, err)

	require.NotEmpty(t, grid)
	assert.Equal(t, "21:00", grid[len(grid)-1].String())
}

func TestGenerateSlotGrid_InvalidHours(t *testing.T) {
	_, err := generateSlotGrid(ts(t, "23:00"), ts(t, "06:00"), 60)
	assert.ErrorIs(t, err, ErrInvalidGroundHours)
}

func TestMarkAvailability(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	grid := []types.TimeString{ts(t, "09:00"), ts(t, "10:00"), ts(t, "11:00")}

	bookings := []*domain.Booking{
		{
			StartTime: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
			Status:    domain.StatusConfirmed,
		},
	}

	slots := markAvailability(grid, date, 60, bookings)

	require.Len(t, slots, 3)
	assert.True(t, slots[0].Available, "slot before booking is free")
	assert.False(t, slots[1].Available, "booked slot is occupied")
	assert.True(t, slots[2].Available, "slot after booking is free: intervals are half-open")
}

func TestMarkAvailability_CancelledBookingDoesNotOccupy(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	grid := []types.TimeString{ts(t, "10:00")}

	bookings := []*domain.Booking{
		{
			StartTime: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
			Status:    domain.StatusCancelled,
		},
	}

	slots := markAvailability(grid, date, 60, bookings)

	require.Len(t, slots, 1)
	assert.True(t, slots[0].Available)
}

func TestMarkAvailability_PartialOverlapOccupies(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	grid := []types.TimeString{ts(t, "10:00"), ts(t, "11:00")}

	// Бронирование 10:30-11:30 задевает оба слота
	bookings := []*domain.Booking{
		{
			StartTime: time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 6, 2, 11, 30, 0, 0, time.UTC),
			Status:    domain.StatusConfirmed,
		},
	}

	slots := markAvailability(grid, date, 60, bookings)

	require.Len(t, slots, 2)
	assert.False(t, slots[0].Available)
	assert.False(t, slots[1].Available)
}
