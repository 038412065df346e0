package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"realestate-backend-go/internal/models"
)

const residenciesCollection = "residencies"

// firestoreResidencyRepository implements ResidencyRepository on Firestore.
type firestoreResidencyRepository struct {
	client *firestore.Client
}

// NewFirestoreResidencyRepository creates a Firestore-backed
// ResidencyRepository.
func NewFirestoreResidencyRepository(client *firestore.Client) ResidencyRepository {
	return &firestoreResidencyRepository{client: client}
}

func (r *firestoreResidencyRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(residenciesCollection)
}

// Create stores a new residency. Firestore has no compound unique
// constraint, so the one-listing-per-address-per-owner rule is checked by
// a query inside the creating transaction.
func (r *firestoreResidencyRepository) Create(ctx context.Context, residency *models.Residency) error {
	if residency.ID == "" {
		return fmt.Errorf("residency ID cannot be empty for Create")
	}
	now := time.Now().UTC()
	residency.CreatedAt = now
	residency.UpdatedAt = now

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		dup := r.collection().
			Where("address", "==", residency.Address).
			Where("userEmail", "==", residency.UserEmail).
			Limit(1)
		it := tx.Documents(dup)
		defer it.Stop()

		if _, err := it.Next(); err != iterator.Done {
			if err != nil {
				return fmt.Errorf("failed to check residency uniqueness: %w", err)
			}
			return fmt.Errorf("residency at '%s' for '%s': %w", residency.Address, residency.UserEmail, ErrAlreadyExists)
		}

		return tx.Create(r.collection().Doc(residency.ID), residency)
	})
}

// GetByID retrieves a residency by its document ID.
func (r *firestoreResidencyRepository) GetByID(ctx context.Context, id string) (*models.Residency, error) {
	if id == "" {
		return nil, fmt.Errorf("residency ID cannot be empty for GetByID")
	}
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("residency '%s': %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get residency '%s': %w", id, err)
	}

	var residency models.Residency
	if err := snap.DataTo(&residency); err != nil {
		return nil, fmt.Errorf("failed to decode residency '%s': %w", id, err)
	}
	residency.ID = snap.Ref.ID
	return &residency, nil
}

// List returns all residencies, newest first.
func (r *firestoreResidencyRepository) List(ctx context.Context) ([]*models.Residency, error) {
	it := r.collection().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer it.Stop()

	var residencies []*models.Residency
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list residencies: %w", err)
		}
		var residency models.Residency
		if err := snap.DataTo(&residency); err != nil {
			return nil, fmt.Errorf("failed to decode residency '%s': %w", snap.Ref.ID, err)
		}
		residency.ID = snap.Ref.ID
		residencies = append(residencies, &residency)
	}
	return residencies, nil
}
