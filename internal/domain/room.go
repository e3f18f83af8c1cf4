package domain

// DefaultAddress is used when a room is created without an explicit address.
const DefaultAddress = "Budapest"

type Room struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required,max=200"`
	Capacity    int     `json:"capacity" validate:"required,gt=0"`
	PricePerDay float64 `json:"price_per_day" validate:"required,gt=0"`
	Description string  `json:"description,omitempty" validate:"max=500"`
	Address     string  `json:"address" validate:"max=100"`

	// Relations
	Bookings []Booking `json:"bookings,omitempty"`
}
