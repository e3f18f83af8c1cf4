package room

import (
	"context"
	"time"

	"roombooking/internal/domain"
)

// RoomRepository is the room store behind the service.
type RoomRepository interface {
	GetAll(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
	Exists(ctx context.Context, id int64) (bool, error)
	GetAvailable(ctx context.Context, start, end time.Time, minPrice, maxPrice *float64) ([]domain.Room, error)
	Remove(ctx context.Context, room *domain.Room) error
}

// BookingRepository is the slice of the booking store the room service needs
// to guard deletions.
type BookingRepository interface {
	GetForRoom(ctx context.Context, roomID int64) ([]domain.Booking, error)
}
