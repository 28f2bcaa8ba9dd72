package plan_recurring_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

func mustParseDays(t *testing.T, days []int) domain.RecurringDays {
	t.Helper()
	parsed, err := domain.ParseRecurringDays(days)
	require.NoError(t, err)
	return parsed
}

func TestGenerateOccurrences_WeekdayPattern(t *testing.T) {
	// 2025-06-02 - понедельник
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	until := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	intervals := generateOccurrences(start, end, mustParseDays(t, []int{1, 3, 5}), until, now)

	require.Len(t, intervals, 6)

	wantStarts := []time.Time{
		time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),  // пн
		time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC),  // ср
		time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC),  // пт
		time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC),  // пн
		time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC), // ср
		time.Date(2025, 6, 13, 9, 0, 0, 0, time.UTC), // пт
	}

	for i, iv := range intervals {
		assert.Equal(t, wantStarts[i], iv.Start)
		assert.Equal(t, wantStarts[i].Add(time.Hour), iv.End)
	}
}

func TestGenerateOccurrences_EndDateInclusive(t *testing.T) {
	// Дата окончания выпадает на день из набора - кандидат на неё включается
	start := time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	until := time.Date(2025, 6, 9, 23, 59, 0, 0, time.UTC) // понедельник
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	intervals := generateOccurrences(start, end, mustParseDays(t, []int{1}), until, now)

	require.Len(t, intervals, 2)
	assert.Equal(t, time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC), intervals[0].Start)
	assert.Equal(t, time.Date(2025, 6, 9, 18, 0, 0, 0, time.UTC), intervals[1].Start)
	assert.Equal(t, 90*time.Minute, intervals[1].End.Sub(intervals[1].Start))
}

func TestGenerateOccurrences_PastCandidatesSilentlyDropped(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	until := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	// Сейчас середина серии: первые три кандидата уже в прошлом
	now := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

	intervals := generateOccurrences(start, end, mustParseDays(t, []int{1, 3, 5}), until, now)

	require.Len(t, intervals, 3)
	assert.Equal(t, time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC), intervals[0].Start)
}

func TestGenerateOccurrences_CandidateAtNowIsDropped(t *testing.T) {
	// Кандидат ровно в now не лежит строго в будущем
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	until := time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	intervals := generateOccurrences(start, end, mustParseDays(t, []int{1}), until, now)

	assert.Empty(t, intervals)
}

func TestGenerateOccurrences_AllPastYieldsEmpty(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	until := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	intervals := generateOccurrences(start, end, mustParseDays(t, []int{1, 3, 5}), until, now)

	assert.Empty(t, intervals)
}

func TestGenerateOccurrences_WallClockPreserved(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	start := time.Date(2025, 6, 2, 20, 30, 0, 0, loc)
	end := start.Add(time.Hour)
	until := time.Date(2025, 6, 16, 0, 0, 0, 0, loc)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, loc)

	intervals := generateOccurrences(start, end, mustParseDays(t, []int{1}), until, now)

	require.Len(t, intervals, 3)
	for _, iv := range intervals {
		assert.Equal(t, 20, iv.Start.Hour())
		assert.Equal(t, 30, iv.Start.Minute())
	}
}

func TestAssertDisjoint(t *testing.T) {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	disjoint := []domain.Interval{
		{Start: base, End: base.Add(time.Hour)},
		{Start: base.AddDate(0, 0, 2), End: base.AddDate(0, 0, 2).Add(time.Hour)},
	}
	assert.NoError(t, assertDisjoint(disjoint))

	overlapping := []domain.Interval{
		{Start: base, End: base.Add(2 * time.Hour)},
		{Start: base.Add(time.Hour), End: base.Add(3 * time.Hour)},
	}
	assert.ErrorIs(t, assertDisjoint(overlapping), ErrInternal)
}
