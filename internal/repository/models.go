package repository

import (
	"time"

	"roombooking/internal/domain"
)

type roomModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name;size:200"`
	Capacity    int     `gorm:"column:capacity"`
	PricePerDay float64 `gorm:"column:price_per_day"`
	Description string  `gorm:"column:description;size:500"`
	Address     string  `gorm:"column:address;size:100"`
}

func (roomModel) TableName() string { return "rooms" }

type bookingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	RoomID      int64     `gorm:"column:room_id;index"`
	StartTime   time.Time `gorm:"column:start_time"`
	EndTime     time.Time `gorm:"column:end_time"`
	Booker      string    `gorm:"column:booker;size:200;index"`
	TotalPrice  float64   `gorm:"column:total_price"`
	BookingDate time.Time `gorm:"column:booking_date"`
	IsCancelled bool      `gorm:"column:is_cancelled"`

	Room *roomModel `gorm:"foreignKey:RoomID"`
}

func (bookingModel) TableName() string { return "bookings" }

// Models lists every persisted model for AutoMigrate.
func Models() []any {
	return []any{&roomModel{}, &bookingModel{}}
}

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:          m.ID,
		Name:        m.Name,
		Capacity:    m.Capacity,
		PricePerDay: m.PricePerDay,
		Description: m.Description,
		Address:     m.Address,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:          r.ID,
		Name:        r.Name,
		Capacity:    r.Capacity,
		PricePerDay: r.PricePerDay,
		Description: r.Description,
		Address:     r.Address,
	}
}

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:          m.ID,
		RoomID:      m.RoomID,
		Start:       m.StartTime,
		End:         m.EndTime,
		Booker:      m.Booker,
		TotalPrice:  m.TotalPrice,
		BookingDate: m.BookingDate,
		IsCancelled: m.IsCancelled,
	}
	if m.Room != nil {
		b.Room = toDomainRoom(*m.Room)
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:          b.ID,
		RoomID:      b.RoomID,
		StartTime:   b.Start,
		EndTime:     b.End,
		Booker:      b.Booker,
		TotalPrice:  b.TotalPrice,
		BookingDate: b.BookingDate,
		IsCancelled: b.IsCancelled,
	}
}
