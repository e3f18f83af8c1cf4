package booking

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"roombooking/internal/domain"
	"roombooking/internal/pkg/timeutil"
	"roombooking/internal/repository"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	uow      UnitOfWork
	events   EventPublisher
	logger   *log.Logger
}

func NewService(bookings BookingRepository, rooms RoomRepository, uow UnitOfWork, events EventPublisher, logger *log.Logger) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		uow:      uow,
		events:   events,
		logger:   logger,
	}
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// Create validates the request, checks the room for conflicting bookings and
// persists a new booking priced at the room's daily rate.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	s.logf("creating booking room_id=%d start=%s end=%s booker=%q",
		req.RoomID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339), req.Booker)

	if !req.End.After(req.Start) {
		return nil, ErrEndNotAfterStart
	}
	if timeutil.DaysBetween(req.Start, req.End) < 1 {
		return nil, ErrStayTooShort
	}
	if strings.TrimSpace(req.Booker) == "" {
		return nil, ErrEmptyBooker
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	overlap, err := s.bookings.AnyOverlap(ctx, req.RoomID, req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if overlap {
		s.logf("booking conflict room_id=%d start=%s end=%s",
			req.RoomID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))
		return nil, ErrOverlap
	}

	b := &domain.Booking{
		RoomID:      req.RoomID,
		Start:       req.Start,
		End:         req.End,
		Booker:      req.Booker,
		TotalPrice:  room.PricePerDay * float64(timeutil.NumberOfDays(req.Start, req.End)),
		BookingDate: time.Now(),
		IsCancelled: false,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isOverlapConstraintViolation(err) {
			return nil, ErrOverlap
		}
		return nil, err
	}
	b.Room = room

	s.logf("created booking id=%d room_id=%d total_price=%.2f", b.ID, b.RoomID, b.TotalPrice)
	if s.events != nil {
		s.events.BookingCreated(b)
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// GetForRoom lists the room's non-cancelled bookings, newest start first.
func (s *Service) GetForRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	exists, err := s.rooms.Exists(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRoomNotFound
	}
	return s.bookings.GetForRoom(ctx, roomID)
}

// Cancel soft-marks the booking. Cancelling an already-cancelled booking is
// a no-op.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if b.IsCancelled {
		s.logf("cancel no-op, booking already cancelled id=%d", id)
		return nil
	}

	b.IsCancelled = true
	if err := s.bookings.Update(ctx, b); err != nil {
		return err
	}

	s.logf("cancelled booking id=%d room_id=%d", b.ID, b.RoomID)
	if s.events != nil {
		s.events.BookingCancelled(b)
	}
	return nil
}

// Swap moves a booking to another room: a new booking is created on the new
// room with the original window, booker and booking date, priced at the new
// room's rate, and the original is cancelled. Both mutations commit as one
// transaction; on any failure the original booking is left untouched.
func (s *Service) Swap(ctx context.Context, existingBookingID, newRoomID int64) (*domain.Booking, error) {
	s.logf("swapping booking id=%d to room_id=%d", existingBookingID, newRoomID)

	existing, err := s.GetByID(ctx, existingBookingID)
	if err != nil {
		return nil, err
	}

	newRoom, err := s.rooms.GetByID(ctx, newRoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	var created *domain.Booking
	err = s.uow.Do(ctx, func(bookings repository.BookingStore) error {
		overlap, err := bookings.AnyOverlap(ctx, newRoomID, existing.Start, existing.End)
		if err != nil {
			return err
		}
		if overlap {
			return ErrOverlap
		}

		nb := &domain.Booking{
			RoomID:      newRoomID,
			Start:       existing.Start,
			End:         existing.End,
			Booker:      existing.Booker,
			TotalPrice:  newRoom.PricePerDay * float64(existing.NumberOfDays()),
			BookingDate: existing.BookingDate,
		}
		if err := bookings.Create(ctx, nb); err != nil {
			if isOverlapConstraintViolation(err) {
				return ErrOverlap
			}
			return err
		}

		cancelled := *existing
		cancelled.IsCancelled = true
		if err := bookings.Update(ctx, &cancelled); err != nil {
			return err
		}

		created = nb
		return nil
	})
	if err != nil {
		return nil, err
	}
	created.Room = newRoom

	s.logf("swapped booking id=%d room_id=%d -> new booking id=%d room_id=%d",
		existing.ID, existing.RoomID, created.ID, created.RoomID)
	if s.events != nil {
		s.events.BookingSwapped(existing, created)
	}
	return created, nil
}

// GetUserHistory returns the booker's bookings, cancelled included, matching
// the filter, ordered by booking date then start, both descending.
func (s *Service) GetUserHistory(ctx context.Context, booker string, f repository.HistoryFilter) ([]domain.Booking, error) {
	if strings.TrimSpace(booker) == "" {
		return nil, ErrEmptyBooker
	}
	return s.bookings.GetUserHistory(ctx, booker, f)
}

// PrintUserHistory emits the booker's full history as a formatted report to
// the service logger. An empty history is not an error.
func (s *Service) PrintUserHistory(ctx context.Context, booker string) error {
	bookings, err := s.GetUserHistory(ctx, booker, repository.HistoryFilter{})
	if err != nil {
		return err
	}

	if len(bookings) == 0 {
		s.logf("no booking history found for booker=%q", booker)
		return nil
	}

	s.logf("=== BOOKING HISTORY FOR %s ===", booker)
	s.logf("total bookings: %d", len(bookings))
	for _, b := range bookings {
		s.logf("booking id=%d room_id=%d start=%s end=%s total_price=%.2f booked_on=%s cancelled=%t",
			b.ID, b.RoomID,
			b.Start.Format("2006-01-02"), b.End.Format("2006-01-02"),
			b.TotalPrice,
			b.BookingDate.Format("2006-01-02 15:04"),
			b.IsCancelled)
	}
	s.logf("=== END OF BOOKING HISTORY FOR %s ===", booker)
	return nil
}

// CheckOverlap reports whether any non-cancelled booking on the room
// intersects the half-open window [start, end).
func (s *Service) CheckOverlap(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	return s.bookings.AnyOverlap(ctx, roomID, start, end)
}

// Purge physically removes a booking row. Cancel is the canonical deletion;
// purge exists for administrative cleanup only.
func (s *Service) Purge(ctx context.Context, id int64) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.bookings.Delete(ctx, b); err != nil {
		return err
	}

	s.logf("purged booking id=%d room_id=%d", b.ID, b.RoomID)
	if s.events != nil {
		s.events.BookingPurged(id)
	}
	return nil
}

// isOverlapConstraintViolation recognises the Postgres exclusion constraint
// that rejects overlapping inserts at the storage layer, closing the race
// between concurrent check-then-insert callers.
func isOverlapConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" && pgErr.ConstraintName == "bookings_no_overlap"
	}
	return false
}
