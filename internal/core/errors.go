package core

import "errors"

// Sentinel errors returned by the services. The API layer maps them to
// status codes: not-found errors to 404, precondition failures to 400,
// everything else to 500.
var (
	// ErrUserNotFound is returned when no user exists for the given email.
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadyBooked is returned by BookVisit when the user already holds
	// a booking for the residency.
	ErrAlreadyBooked = errors.New("residency already booked")

	// ErrBookingNotFound is returned by CancelBooking when the user has no
	// booking for the residency. It is deliberately distinct from
	// ErrAlreadyBooked even though both map to the same status code today.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrResidencyNotFound is returned when no residency exists for the ID.
	ErrResidencyNotFound = errors.New("residency not found")

	// ErrResidencyExists is returned when the owner already has a listing
	// at the same address.
	ErrResidencyExists = errors.New("residency with this address already exists for this user")

	// ErrStoreUnavailable wraps failures of the store itself (network,
	// timeout, serialization). Never retried here; surfaced as a 500.
	ErrStoreUnavailable = errors.New("store unavailable")
)
