package db

import (
	"context"
	"errors"

	"realestate-backend-go/internal/models"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// ErrAlreadyExists is returned when a create collides with an existing
// document (same users doc ID, or same residency address for an owner).
var ErrAlreadyExists = errors.New("document already exists")

// UserRepository defines the storage operations on user documents.
//
// Mutate is the one write primitive for embedded lists: it runs fn against
// a freshly-read user inside a transaction and persists the result, so a
// read-modify-write on bookedVisits or favResidenciesID cannot lose a
// concurrent update. An error returned by fn aborts the transaction and is
// propagated unchanged, which lets the service layer surface its own
// precondition failures (duplicate booking, missing booking) through it.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Mutate(ctx context.Context, email string, fn func(*models.User) error) (*models.User, error)
}

// ResidencyRepository defines the storage operations on residency listings.
type ResidencyRepository interface {
	Create(ctx context.Context, residency *models.Residency) error
	GetByID(ctx context.Context, id string) (*models.Residency, error)
	List(ctx context.Context) ([]*models.Residency, error)
}
