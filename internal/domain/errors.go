package domain

import (
	"errors"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var (
	// ErrInvalidTime is returned when a display time cannot be parsed
	ErrInvalidTime = types.ErrInvalidDisplayTime

	// ErrOpenNotBeforeClose is returned when opening time is not strictly before closing time
	ErrOpenNotBeforeClose = errors.New("opening time must be before closing time")

	// ErrUnknownWeekday is returned for keys outside monday..sunday
	ErrUnknownWeekday = errors.New("unknown weekday")
)

// ErrInvalidHours is returned when a stored hours value is neither "Closed" nor a time range
var ErrInvalidHours = errors.New("invalid working hours value")
