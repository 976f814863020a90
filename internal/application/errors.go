package application

import "errors"

var (
	// ErrForbidden is returned when the acting identity lacks permission for
	// an operation, such as deleting another user's booking.
	ErrForbidden = errors.New("application: forbidden")
	// ErrLocationNotFound is returned for unknown location identifiers.
	ErrLocationNotFound = errors.New("application: location not found")
	// ErrBookableNotFound is returned for unknown bookable identifiers.
	ErrBookableNotFound = errors.New("application: bookable not found")
	// ErrBookingNotFound is returned for unknown booking identifiers.
	ErrBookingNotFound = errors.New("application: booking not found")
	// ErrStartDateRequired is returned when an availability search supplies
	// an end bound without a start bound.
	ErrStartDateRequired = errors.New("application: start is required when end is given")
	// ErrEndDateRequired is returned when an availability search supplies a
	// start bound without an end bound.
	ErrEndDateRequired = errors.New("application: end is required when start is given")
)
