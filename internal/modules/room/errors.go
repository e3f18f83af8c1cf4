package room

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")

	ErrInvalidWindow = fmt.Errorf("%w: end date must be after start date", ErrValidation)
	ErrEmptyName     = fmt.Errorf("%w: room name cannot be empty", ErrValidation)
	ErrBadCapacity   = fmt.Errorf("%w: capacity must be a positive number", ErrValidation)
	ErrBadPrice      = fmt.Errorf("%w: price per day must be greater than zero", ErrValidation)

	ErrNotFound    = errors.New("room not found")
	ErrHasBookings = errors.New("cannot delete room with existing bookings")
)
