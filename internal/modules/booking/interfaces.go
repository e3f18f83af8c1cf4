package booking

import (
	"context"
	"time"

	"roombooking/internal/domain"
	"roombooking/internal/repository"
)

// BookingRepository is the booking store the service reads and writes.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetForRoom(ctx context.Context, roomID int64) ([]domain.Booking, error)
	GetUserHistory(ctx context.Context, booker string, f repository.HistoryFilter) ([]domain.Booking, error)
	AnyOverlap(ctx context.Context, roomID int64, start, end time.Time) (bool, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, b *domain.Booking) error
}

// RoomRepository is the slice of the room store the booking service needs.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// UnitOfWork commits multi-entity mutations atomically.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(bookings repository.BookingStore) error) error
}

// EventPublisher receives lifecycle notifications. Implementations must not
// block; a nil publisher disables the feed.
type EventPublisher interface {
	BookingCreated(b *domain.Booking)
	BookingCancelled(b *domain.Booking)
	BookingSwapped(oldBooking, newBooking *domain.Booking)
	BookingPurged(id int64)
}
