package core

import (
	"context"
	"time"

	"realestate-backend-go/internal/models"
)

// UserService defines the booking and favorites operations over a single
// user document. Every operation except CreateUser fails with
// ErrUserNotFound when no user exists for the email.
type UserService interface {
	// CreateUser creates the user if absent and returns the resulting
	// record either way. The boolean reports whether a new record was
	// created. Repeated calls with the same email never fail and never
	// create a duplicate.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, bool, error)

	// BookVisit appends a booking for the residency at the given date.
	// Fails with ErrAlreadyBooked if the user already holds one.
	BookVisit(ctx context.Context, email, residencyID string, date time.Time) (*models.Booking, error)

	// ListBookings returns the user's booked visits in append order.
	ListBookings(ctx context.Context, email string) ([]models.Booking, error)

	// CancelBooking removes the booking for the residency. Fails with
	// ErrBookingNotFound if no such booking exists.
	CancelBooking(ctx context.Context, email, residencyID string) error

	// ToggleFavorite adds the residency to the user's favorites if absent,
	// removes it if present. Returns whether it was added and the updated
	// favorites list. Calling it twice restores the original state.
	ToggleFavorite(ctx context.Context, email, residencyID string) (added bool, favorites []string, err error)

	// ListFavorites returns the user's favorite residency IDs.
	ListFavorites(ctx context.Context, email string) ([]string, error)
}

// ResidencyService defines the operations on residency listings.
type ResidencyService interface {
	CreateResidency(ctx context.Context, req models.CreateResidencyRequest) (*models.Residency, error)
	GetResidency(ctx context.Context, id string) (*models.Residency, error)
	ListResidencies(ctx context.Context) ([]*models.Residency, error)
}
