package timeutil

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not count as an overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(!aEnd.After(bStart) || !aStart.Before(bEnd))
}

// DaysBetween returns the whole calendar days between the dates of start and
// end. Each instant is truncated to its own local date, so a 09:00 start and a
// 17:00 end on the same day count as zero days.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// NumberOfDays returns the billable days for a stay, never less than one.
func NumberOfDays(start, end time.Time) int {
	d := DaysBetween(start, end)
	if d < 1 {
		return 1
	}
	return d
}
