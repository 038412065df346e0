package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"realestate-backend-go/internal/models"
)

const usersCollection = "users"

// firestoreUserRepository implements UserRepository on Firestore. The
// user's email is the document ID, so email uniqueness is enforced by the
// store itself.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a Firestore-backed UserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	return &firestoreUserRepository{client: client}
}

func (r *firestoreUserRepository) doc(email string) *firestore.DocumentRef {
	return r.client.Collection(usersCollection).Doc(email)
}

// GetByEmail retrieves a user document by email.
func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, fmt.Errorf("email cannot be empty for GetByEmail")
	}
	snap, err := r.doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user '%s': %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user '%s': %w", email, err)
	}

	var user models.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user '%s': %w", email, err)
	}
	user.Email = snap.Ref.ID
	return &user, nil
}

// Create adds a new user document. It fails with ErrAlreadyExists when a
// document with the same email is already present, which callers rely on
// to keep create-user idempotent under concurrent registration.
func (r *firestoreUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.Email == "" {
		return fmt.Errorf("user email cannot be empty for Create")
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.doc(user.Email).Create(ctx, user); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("user '%s': %w", user.Email, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user '%s': %w", user.Email, err)
	}
	return nil
}

// Mutate runs fn against the user inside a Firestore transaction and writes
// the mutated document back. The transaction gives optimistic concurrency:
// if another writer touches the document between the read and the commit,
// the SDK retries the whole function against fresh data. Errors returned
// by fn abort the transaction and are propagated as-is.
func (r *firestoreUserRepository) Mutate(ctx context.Context, email string, fn func(*models.User) error) (*models.User, error) {
	if email == "" {
		return nil, fmt.Errorf("email cannot be empty for Mutate")
	}

	var updated models.User
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ref := r.doc(email)
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("user '%s': %w", email, ErrNotFound)
			}
			return err
		}

		var user models.User
		if err := snap.DataTo(&user); err != nil {
			return fmt.Errorf("failed to decode user '%s': %w", email, err)
		}
		user.Email = snap.Ref.ID

		if err := fn(&user); err != nil {
			return err
		}

		user.UpdatedAt = time.Now().UTC()
		updated = user
		return tx.Set(ref, &user)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
