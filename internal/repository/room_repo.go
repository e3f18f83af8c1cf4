package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"roombooking/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	var models []roomModel
	tx := r.db.WithContext(ctx).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", id).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// GetAvailable returns rooms within the optional price bounds that have no
// non-cancelled booking intersecting [start, end). The overlap test runs in
// Go against each room's bookings so that the same half-open predicate is
// used everywhere.
func (r *RoomRepository) GetAvailable(ctx context.Context, start, end time.Time, minPrice, maxPrice *float64) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Model(&roomModel{})
	if minPrice != nil {
		q = q.Where("price_per_day >= ?", *minPrice)
	}
	if maxPrice != nil {
		q = q.Where("price_per_day <= ?", *maxPrice)
	}

	var models []roomModel
	if tx := q.Order("id").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		var bookings []bookingModel
		tx := r.db.WithContext(ctx).
			Where("room_id = ? AND is_cancelled = ?", m.ID, false).
			Find(&bookings)
		if tx.Error != nil {
			return nil, tx.Error
		}

		busy := false
		for _, b := range bookings {
			if toDomainBooking(b).OverlapsWindow(start, end) {
				busy = true
				break
			}
		}
		if !busy {
			out = append(out, *toDomainRoom(m))
		}
	}
	return out, nil
}

func (r *RoomRepository) Remove(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	return r.db.WithContext(ctx).Delete(&m).Error
}
