package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"realestate-backend-go/internal/db"
	"realestate-backend-go/internal/models"
)

// userService implements UserService on top of a UserRepository. All list
// mutations go through the repository's transactional Mutate so that two
// concurrent writes to the same user document cannot lose an update.
type userService struct {
	users db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(users db.UserRepository) UserService {
	return &userService{users: users}
}

// CreateUser is idempotent: if a user with the email already exists it is
// returned untouched. A concurrent registration losing the create race is
// folded into the "already existed" path.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, bool, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, false, storeFailure("get user", err)
	}

	user := &models.User{
		Email:            req.Email,
		Name:             req.Name,
		Image:            req.Image,
		BookedVisits:     []models.Booking{},
		FavResidenciesID: []string{},
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, db.ErrAlreadyExists) {
			// Lost the race to another create with the same email; the
			// winner's record is the canonical one.
			existing, getErr := s.users.GetByEmail(ctx, req.Email)
			if getErr != nil {
				return nil, false, storeFailure("get user after create race", getErr)
			}
			return existing, false, nil
		}
		return nil, false, storeFailure("create user", err)
	}
	return user, true, nil
}

func (s *userService) BookVisit(ctx context.Context, email, residencyID string, date time.Time) (*models.Booking, error) {
	booking := models.Booking{ResidencyID: residencyID, Date: date.UTC()}

	_, err := s.users.Mutate(ctx, email, func(u *models.User) error {
		if u.HasBooking(residencyID) {
			return ErrAlreadyBooked
		}
		u.BookedVisits = append(u.BookedVisits, booking)
		return nil
	})
	if err != nil {
		return nil, mapMutateError("book visit", err)
	}
	return &booking, nil
}

func (s *userService) ListBookings(ctx context.Context, email string) ([]models.Booking, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeFailure("list bookings", err)
	}
	if user.BookedVisits == nil {
		return []models.Booking{}, nil
	}
	return user.BookedVisits, nil
}

func (s *userService) CancelBooking(ctx context.Context, email, residencyID string) error {
	_, err := s.users.Mutate(ctx, email, func(u *models.User) error {
		for i, b := range u.BookedVisits {
			if b.ResidencyID == residencyID {
				u.BookedVisits = append(u.BookedVisits[:i], u.BookedVisits[i+1:]...)
				return nil
			}
		}
		return ErrBookingNotFound
	})
	if err != nil {
		return mapMutateError("cancel booking", err)
	}
	return nil
}

func (s *userService) ToggleFavorite(ctx context.Context, email, residencyID string) (bool, []string, error) {
	var added bool
	updated, err := s.users.Mutate(ctx, email, func(u *models.User) error {
		if u.HasFavorite(residencyID) {
			kept := make([]string, 0, len(u.FavResidenciesID)-1)
			for _, id := range u.FavResidenciesID {
				if id != residencyID {
					kept = append(kept, id)
				}
			}
			u.FavResidenciesID = kept
			added = false
		} else {
			u.FavResidenciesID = append(u.FavResidenciesID, residencyID)
			added = true
		}
		return nil
	})
	if err != nil {
		return false, nil, mapMutateError("toggle favorite", err)
	}
	favorites := updated.FavResidenciesID
	if favorites == nil {
		favorites = []string{}
	}
	return added, favorites, nil
}

func (s *userService) ListFavorites(ctx context.Context, email string) ([]string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeFailure("list favorites", err)
	}
	if user.FavResidenciesID == nil {
		return []string{}, nil
	}
	return user.FavResidenciesID, nil
}

// mapMutateError translates errors coming out of UserRepository.Mutate:
// missing documents become ErrUserNotFound, service preconditions raised
// inside the mutation pass through untouched, and anything else is a store
// failure.
func mapMutateError(op string, err error) error {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, ErrAlreadyBooked), errors.Is(err, ErrBookingNotFound):
		return err
	default:
		return storeFailure(op, err)
	}
}

func storeFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
