package booking

import (
	"time"

	"roombooking/internal/domain"
)

type CreateBookingRequest struct {
	RoomID int64     `json:"room_id" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
	Booker string    `json:"booker" binding:"required,max=200"`
}

type SwapBookingRequest struct {
	NewRoomID int64 `json:"new_room_id" binding:"required"`
}

type RoomSummary struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	PricePerDay float64 `json:"price_per_day"`
	Address     string  `json:"address"`
}

type BookingResponse struct {
	ID           int64        `json:"id"`
	RoomID       int64        `json:"room_id"`
	Start        time.Time    `json:"start"`
	End          time.Time    `json:"end"`
	Booker       string       `json:"booker"`
	TotalPrice   float64      `json:"total_price"`
	NumberOfDays int          `json:"number_of_days"`
	BookingDate  time.Time    `json:"booking_date"`
	IsCancelled  bool         `json:"is_cancelled"`
	Room         *RoomSummary `json:"room,omitempty"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:           b.ID,
		RoomID:       b.RoomID,
		Start:        b.Start,
		End:          b.End,
		Booker:       b.Booker,
		TotalPrice:   b.TotalPrice,
		NumberOfDays: b.NumberOfDays(),
		BookingDate:  b.BookingDate,
		IsCancelled:  b.IsCancelled,
	}
	if b.Room != nil {
		resp.Room = &RoomSummary{
			ID:          b.Room.ID,
			Name:        b.Room.Name,
			PricePerDay: b.Room.PricePerDay,
			Address:     b.Room.Address,
		}
	}
	return resp
}

func toBookingResponses(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}
