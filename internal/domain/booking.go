package domain

import (
	"time"

	"roombooking/internal/pkg/timeutil"
)

type Booking struct {
	ID          int64     `json:"id"`
	RoomID      int64     `json:"room_id" validate:"required,gt=0"`
	Start       time.Time `json:"start" validate:"required"`
	End         time.Time `json:"end" validate:"required"`
	Booker      string    `json:"booker" validate:"required,max=200"`
	TotalPrice  float64   `json:"total_price" validate:"required,gt=0"`
	BookingDate time.Time `json:"booking_date"`
	IsCancelled bool      `json:"is_cancelled"`

	// Relations
	Room *Room `json:"room,omitempty"`
}

// NumberOfDays is the billable length of the stay in calendar days, never
// less than one.
func (b *Booking) NumberOfDays() int {
	return timeutil.NumberOfDays(b.Start, b.End)
}

// OverlapsWindow reports whether the booking's [Start, End) window intersects
// [start, end) under half-open semantics.
func (b *Booking) OverlapsWindow(start, end time.Time) bool {
	return timeutil.Overlaps(b.Start, b.End, start, end)
}
