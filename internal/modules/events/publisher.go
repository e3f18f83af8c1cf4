package events

import (
	"log"
	"time"

	"roombooking/internal/domain"
)

const (
	TypeBookingCreated   = "booking_created"
	TypeBookingCancelled = "booking_cancelled"
	TypeBookingSwapped   = "booking_swapped"
	TypeBookingPurged    = "booking_purged"
)

type Event struct {
	Type         string     `json:"type"`
	BookingID    int64      `json:"booking_id"`
	OldBookingID int64      `json:"old_booking_id,omitempty"`
	RoomID       int64      `json:"room_id,omitempty"`
	Booker       string     `json:"booker,omitempty"`
	Start        *time.Time `json:"start,omitempty"`
	End          *time.Time `json:"end,omitempty"`
	At           time.Time  `json:"at"`
}

// Publisher fans booking lifecycle events out to the hub. Delivery is best
// effort; a failed broadcast never fails the operation that triggered it.
type Publisher struct {
	hub    *Hub
	logger *log.Logger
}

func NewPublisher(hub *Hub, logger *log.Logger) *Publisher {
	return &Publisher{hub: hub, logger: logger}
}

func (p *Publisher) BookingCreated(b *domain.Booking) {
	p.publish(Event{
		Type:      TypeBookingCreated,
		BookingID: b.ID,
		RoomID:    b.RoomID,
		Booker:    b.Booker,
		Start:     &b.Start,
		End:       &b.End,
	})
}

func (p *Publisher) BookingCancelled(b *domain.Booking) {
	p.publish(Event{
		Type:      TypeBookingCancelled,
		BookingID: b.ID,
		RoomID:    b.RoomID,
		Booker:    b.Booker,
	})
}

func (p *Publisher) BookingSwapped(oldBooking, newBooking *domain.Booking) {
	p.publish(Event{
		Type:         TypeBookingSwapped,
		BookingID:    newBooking.ID,
		OldBookingID: oldBooking.ID,
		RoomID:       newBooking.RoomID,
		Booker:       newBooking.Booker,
		Start:        &newBooking.Start,
		End:          &newBooking.End,
	})
}

func (p *Publisher) BookingPurged(id int64) {
	p.publish(Event{
		Type:      TypeBookingPurged,
		BookingID: id,
	})
}

func (p *Publisher) publish(ev Event) {
	ev.At = time.Now()
	if p.logger != nil {
		p.logger.Printf("event type=%s booking_id=%d subscribers=%d", ev.Type, ev.BookingID, p.hub.SubscriberCount())
	}
	p.hub.Broadcast(ev)
}
