package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"roombooking/internal/domain"
)

// BookingStore is the transactional surface a unit of work hands out. It is
// the subset of BookingRepository that multi-entity mutations (swap) need.
type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	AnyOverlap(ctx context.Context, roomID int64, start, end time.Time) (bool, error)
	Update(ctx context.Context, b *domain.Booking) error
}

// UnitOfWork runs a function against transaction-bound stores, committing on
// nil and rolling back on error. Swap stages its two booking mutations here
// so a partial failure leaves neither behind.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(bookings BookingStore) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewBookingRepository(tx))
	})
}
