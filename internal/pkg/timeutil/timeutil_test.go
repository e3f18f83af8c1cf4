package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps_Intersecting(t *testing.T) {
	assert.True(t, Overlaps(day(1), day(5), day(3), day(8)))
	assert.True(t, Overlaps(day(3), day(8), day(1), day(5)))
}

func TestOverlaps_Containment(t *testing.T) {
	// [0,10) contains [3,4)
	assert.True(t, Overlaps(day(1), day(11), day(4), day(5)))
	assert.True(t, Overlaps(day(4), day(5), day(1), day(11)))
}

func TestOverlaps_TouchingBoundaryIsNotOverlap(t *testing.T) {
	// [0,5) and [5,10) share only the endpoint
	assert.False(t, Overlaps(day(1), day(6), day(6), day(11)))
	assert.False(t, Overlaps(day(6), day(11), day(1), day(6)))
}

func TestOverlaps_Disjoint(t *testing.T) {
	assert.False(t, Overlaps(day(1), day(3), day(10), day(12)))
	assert.False(t, Overlaps(day(10), day(12), day(1), day(3)))
}

func TestOverlaps_Symmetry(t *testing.T) {
	cases := [][4]time.Time{
		{day(1), day(5), day(3), day(8)},
		{day(1), day(5), day(5), day(9)},
		{day(1), day(9), day(3), day(4)},
		{day(1), day(2), day(8), day(9)},
	}
	for _, c := range cases {
		assert.Equal(t, Overlaps(c[0], c[1], c[2], c[3]), Overlaps(c[2], c[3], c[0], c[1]))
	}
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysBetween(start, end))

	end = time.Date(2026, 3, 2, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(start, end))
}

func TestDaysBetween_MultipleDays(t *testing.T) {
	assert.Equal(t, 2, DaysBetween(day(1), day(3)))
	assert.Equal(t, -2, DaysBetween(day(3), day(1)))
}

func TestNumberOfDays_MinimumOne(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, NumberOfDays(start, end))
	assert.Equal(t, 2, NumberOfDays(day(1), day(3)))
}
