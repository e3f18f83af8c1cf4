package room

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"roombooking/internal/domain"
)

type Service struct {
	rooms    RoomRepository
	bookings BookingRepository
	logger   *log.Logger
}

func NewService(rooms RoomRepository, bookings BookingRepository, logger *log.Logger) *Service {
	return &Service{
		rooms:    rooms,
		bookings: bookings,
		logger:   logger,
	}
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	r, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) Create(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.Capacity <= 0 {
		return nil, ErrBadCapacity
	}
	if req.PricePerDay <= 0 {
		return nil, ErrBadPrice
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		address = domain.DefaultAddress
	}

	r := &domain.Room{
		Name:        req.Name,
		Capacity:    req.Capacity,
		PricePerDay: req.PricePerDay,
		Description: req.Description,
		Address:     address,
	}

	if err := s.rooms.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logf("created room id=%d name=%q capacity=%d price_per_day=%.2f", r.ID, r.Name, r.Capacity, r.PricePerDay)
	return r, nil
}

// GetAvailableRooms lists rooms within the optional price bounds that have no
// non-cancelled booking intersecting [start, end).
func (s *Service) GetAvailableRooms(ctx context.Context, start, end time.Time, minPrice, maxPrice *float64) ([]domain.Room, error) {
	if !end.After(start) {
		return nil, ErrInvalidWindow
	}
	return s.rooms.GetAvailable(ctx, start, end, minPrice, maxPrice)
}

// Delete removes a room. A room that still owns non-cancelled bookings
// cannot be deleted.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logf("attempting to delete room id=%d", id)

	r, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	bookings, err := s.bookings.GetForRoom(ctx, id)
	if err != nil {
		return err
	}
	if len(bookings) > 0 {
		s.logf("cannot delete room id=%d, %d active bookings", id, len(bookings))
		return ErrHasBookings
	}

	if err := s.rooms.Remove(ctx, r); err != nil {
		return err
	}

	s.logf("deleted room id=%d name=%q", r.ID, r.Name)
	return nil
}
