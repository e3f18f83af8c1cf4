package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"roombooking/internal/domain"
	"roombooking/internal/repository"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetForRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetUserHistory(ctx context.Context, booker string, f repository.HistoryFilter) ([]domain.Booking, error) {
	args := m.Called(ctx, booker, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) AnyOverlap(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	args := m.Called(ctx, roomID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUnitOfWork hands the configured store to the callback, standing in for
// a transaction.
type MockUnitOfWork struct {
	mock.Mock
	store repository.BookingStore
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(bookings repository.BookingStore) error) error {
	args := m.Called(ctx)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(m.store)
}

func newTestService(bookings *MockBookingRepository, rooms *MockRoomRepository) (*Service, *MockUnitOfWork) {
	uow := &MockUnitOfWork{store: bookings}
	return NewService(bookings, rooms, uow, nil, nil), uow
}

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	mockRooms.On("GetByID", mock.Anything, int64(7)).Return(&domain.Room{ID: 7, Name: "Room A", PricePerDay: 50}, nil)
	mockBookings.On("AnyOverlap", mock.Anything, int64(7), start, end).Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := service.Create(context.Background(), CreateBookingRequest{
		RoomID: 7,
		Start:  start,
		End:    end,
		Booker: "Anna Kovacs",
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 100.0, b.TotalPrice)
	assert.False(t, b.IsCancelled)
	assert.False(t, b.BookingDate.IsZero())
	assert.NotNil(t, b.Room)
	assert.Equal(t, int64(999), b.ID)
}

func TestService_Create_EndNotAfterStart(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	start := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		RoomID: 7, Start: start, End: end, Booker: "Anna Kovacs",
	})

	assert.ErrorIs(t, err, ErrValidation)
	mockRooms.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Create_SameDayIsTooShort(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	// 09:00-17:00 on the same day: end is after start, but no calendar day
	// boundary is crossed
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		RoomID: 7, Start: start, End: end, Booker: "Anna Kovacs",
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrStayTooShort)
}

func TestService_Create_RoomNotFoundBeforeOverlapCheck(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	mockRooms.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		RoomID: 42, Start: start, End: end, Booker: "Anna Kovacs",
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
	mockBookings.AssertNotCalled(t, "AnyOverlap", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_OverlapConflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	mockRooms.On("GetByID", mock.Anything, int64(7)).Return(&domain.Room{ID: 7, PricePerDay: 50}, nil)
	mockBookings.On("AnyOverlap", mock.Anything, int64(7), start, end).Return(true, nil)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		RoomID: 7, Start: start, End: end, Booker: "Anna Kovacs",
	})

	assert.ErrorIs(t, err, ErrOverlap)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Cancel_SetsFlag(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{ID: 5, RoomID: 7}, nil)
	mockBookings.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.ID == 5 && b.IsCancelled
	})).Return(nil)

	err := service.Cancel(context.Background(), 5)

	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestService_Cancel_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	err := service.Cancel(context.Background(), 5)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Cancel_AlreadyCancelledIsNoOp(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{ID: 5, IsCancelled: true}, nil)

	err := service.Cancel(context.Background(), 5)

	assert.NoError(t, err)
	mockBookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Swap_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, mockUow := newTestService(mockBookings, mockRooms)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	bookedOn := time.Date(2023, 12, 20, 10, 30, 0, 0, time.UTC)

	existing := &domain.Booking{
		ID: 1, RoomID: 1, Start: start, End: end,
		Booker: "Anna Kovacs", TotalPrice: 100, BookingDate: bookedOn,
	}
	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	mockRooms.On("GetByID", mock.Anything, int64(2)).Return(&domain.Room{ID: 2, Name: "Room B", PricePerDay: 75}, nil)
	mockUow.On("Do", mock.Anything).Return(nil)
	mockBookings.On("AnyOverlap", mock.Anything, int64(2), start, end).Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.RoomID == 2 && b.Start.Equal(start) && b.End.Equal(end) &&
			b.Booker == "Anna Kovacs" && b.BookingDate.Equal(bookedOn)
	})).Return(nil)
	mockBookings.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.ID == 1 && b.IsCancelled
	})).Return(nil)

	created, err := service.Swap(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, 150.0, created.TotalPrice)
	assert.Equal(t, int64(999), created.ID)
	assert.Equal(t, int64(2), created.Room.ID)
	mockBookings.AssertExpectations(t)
}

func TestService_Swap_ConflictLeavesOriginalUntouched(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, mockUow := newTestService(mockBookings, mockRooms)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	existing := &domain.Booking{ID: 1, RoomID: 1, Start: start, End: end, Booker: "Anna Kovacs"}
	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	mockRooms.On("GetByID", mock.Anything, int64(2)).Return(&domain.Room{ID: 2, PricePerDay: 75}, nil)
	mockUow.On("Do", mock.Anything).Return(nil)
	mockBookings.On("AnyOverlap", mock.Anything, int64(2), start, end).Return(true, nil)

	_, err := service.Swap(context.Background(), 1, 2)

	assert.ErrorIs(t, err, ErrOverlap)
	assert.False(t, existing.IsCancelled)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockBookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Swap_BookingNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Swap(context.Background(), 1, 2)

	assert.ErrorIs(t, err, ErrNotFound)
	mockRooms.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Swap_RoomNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1}, nil)
	mockRooms.On("GetByID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Swap(context.Background(), 1, 2)

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_GetForRoom_RoomMissing(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	mockRooms.On("Exists", mock.Anything, int64(9)).Return(false, nil)

	_, err := service.GetForRoom(context.Background(), 9)

	assert.ErrorIs(t, err, ErrRoomNotFound)
	mockBookings.AssertNotCalled(t, "GetForRoom", mock.Anything, mock.Anything)
}

func TestService_GetForRoom_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	expected := []domain.Booking{{ID: 3, RoomID: 9}, {ID: 2, RoomID: 9}}
	mockRooms.On("Exists", mock.Anything, int64(9)).Return(true, nil)
	mockBookings.On("GetForRoom", mock.Anything, int64(9)).Return(expected, nil)

	got, err := service.GetForRoom(context.Background(), 9)

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestService_GetUserHistory_EmptyBooker(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	for _, booker := range []string{"", "   "} {
		_, err := service.GetUserHistory(context.Background(), booker, repository.HistoryFilter{})
		assert.ErrorIs(t, err, ErrValidation)
	}
	mockBookings.AssertNotCalled(t, "GetUserHistory", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_GetUserHistory_PassesFilterThrough(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	minPrice, maxPrice := 50.0, 200.0
	f := repository.HistoryFilter{MinPrice: &minPrice, MaxPrice: &maxPrice}
	expected := []domain.Booking{{ID: 4, Booker: "Anna Kovacs", TotalPrice: 150}}
	mockBookings.On("GetUserHistory", mock.Anything, "Anna Kovacs", f).Return(expected, nil)

	got, err := service.GetUserHistory(context.Background(), "Anna Kovacs", f)

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
	mockBookings.AssertExpectations(t)
}

func TestService_PrintUserHistory_EmptyBooker(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	err := service.PrintUserHistory(context.Background(), " ")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_PrintUserHistory_NoBookingsSucceeds(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	mockBookings.On("GetUserHistory", mock.Anything, "Anna Kovacs", repository.HistoryFilter{}).
		Return([]domain.Booking{}, nil)

	err := service.PrintUserHistory(context.Background(), "Anna Kovacs")

	assert.NoError(t, err)
}

func TestService_Purge_DeletesRow(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	b := &domain.Booking{ID: 5, RoomID: 7}
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)
	mockBookings.On("Delete", mock.Anything, b).Return(nil)

	err := service.Purge(context.Background(), 5)

	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestService_CheckOverlap_PassThrough(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	service, _ := newTestService(mockBookings, mockRooms)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	mockBookings.On("AnyOverlap", mock.Anything, int64(7), start, end).Return(true, nil)

	overlap, err := service.CheckOverlap(context.Background(), 7, start, end)

	assert.NoError(t, err)
	assert.True(t, overlap)
}
