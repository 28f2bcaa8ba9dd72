package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func interval(t *testing.T, start, end string) Interval {
	t.Helper()

	startTime, err := time.Parse(time.RFC3339, start)
	if err != nil {
		t.Fatalf("parse start: %v", err)
	}
	endTime, err := time.Parse(time.RFC3339, end)
	if err != nil {
		t.Fatalf("parse end: %v", err)
	}

	return Interval{Start: startTime, End: endTime}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "back to back slots do not overlap",
			a:    interval(t, "2025-06-02T10:00:00Z", "2025-06-02T11:00:00Z"),
			b:    interval(t, "2025-06-02T11:00:00Z", "2025-06-02T12:00:00Z"),
			want: false,
		},
		{
			name: "one minute past the boundary overlaps",
			a:    interval(t, "2025-06-02T10:00:00Z", "2025-06-02T11:01:00Z"),
			b:    interval(t, "2025-06-02T11:00:00Z", "2025-06-02T12:00:00Z"),
			want: true,
		},
		{
			name: "identical intervals overlap",
			a:    interval(t, "2025-06-02T10:00:00Z", "2025-06-02T11:00:00Z"),
			b:    interval(t, "2025-06-02T10:00:00Z", "2025-06-02T11:00:00Z"),
			want: true,
		},
		{
			name: "contained interval overlaps",
			a:    interval(t, "2025-06-02T10:00:00Z", "2025-06-02T12:00:00Z"),
			b:    interval(t, "2025-06-02T10:30:00Z", "2025-06-02T11:00:00Z"),
			want: true,
		},
		{
			name: "disjoint intervals do not overlap",
			a:    interval(t, "2025-06-02T10:00:00Z", "2025-06-02T11:00:00Z"),
			b:    interval(t, "2025-06-02T14:00:00Z", "2025-06-02T15:00:00Z"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestInterval_IsValid(t *testing.T) {
	assert.True(t, interval(t, "2025-06-02T10:00:00Z", "2025-06-02T11:00:00Z").IsValid())
	assert.False(t, interval(t, "2025-06-02T11:00:00Z", "2025-06-02T11:00:00Z").IsValid())
	assert.False(t, interval(t, "2025-06-02T12:00:00Z", "2025-06-02T11:00:00Z").IsValid())
}
