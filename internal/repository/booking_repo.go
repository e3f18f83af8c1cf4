package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"roombooking/internal/domain"
)

// HistoryFilter narrows a booker's history query. Nil fields are skipped;
// set fields combine with AND.
type HistoryFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	MinPrice *float64
	MaxPrice *float64
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	room := b.Room
	*b = *toDomainBooking(m)
	b.Room = room
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Preload("Room").First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// GetForRoom returns the room's non-cancelled bookings, newest start first.
func (r *BookingRepository) GetForRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Preload("Room").
		Where("room_id = ? AND is_cancelled = ?", roomID, false).
		Order("start_time DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// GetUserHistory returns every booking (cancelled included) made by booker,
// filtered by f and ordered by booking date, then start, both descending.
func (r *BookingRepository) GetUserHistory(ctx context.Context, booker string, f HistoryFilter) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("Room").
		Where("booker = ?", booker)

	if f.FromDate != nil {
		q = q.Where("start_time >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("start_time <= ?", *f.ToDate)
	}
	if f.MinPrice != nil {
		q = q.Where("total_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("total_price <= ?", *f.MaxPrice)
	}

	var models []bookingModel
	if tx := q.Order("booking_date DESC, start_time DESC").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// AnyOverlap reports whether any non-cancelled booking on the room intersects
// [start, end). The half-open test runs in Go over the room's bookings.
func (r *BookingRepository) AnyOverlap(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND is_cancelled = ?", roomID, false).
		Find(&models)
	if tx.Error != nil {
		return false, tx.Error
	}

	for _, m := range models {
		if toDomainBooking(m).OverlapsWindow(start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	return r.db.WithContext(ctx).Save(&m).Error
}

// Delete physically removes a booking row. Cancel is the canonical path;
// this exists only for administrative cleanup.
func (r *BookingRepository) Delete(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	return r.db.WithContext(ctx).Delete(&m).Error
}
