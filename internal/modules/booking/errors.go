package booking

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")

	ErrEndNotAfterStart = fmt.Errorf("%w: end date must be after start date", ErrValidation)
	ErrStayTooShort     = fmt.Errorf("%w: end date must be at least one day after start date", ErrValidation)
	ErrEmptyBooker      = fmt.Errorf("%w: booker name cannot be empty", ErrValidation)

	ErrNotFound     = errors.New("booking not found")
	ErrRoomNotFound = errors.New("room not found")
	ErrOverlap      = errors.New("room is already booked for the requested dates")
)
