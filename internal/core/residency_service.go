package core

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"realestate-backend-go/internal/db"
	"realestate-backend-go/internal/models"
)

// residencyService implements ResidencyService on top of a
// ResidencyRepository.
type residencyService struct {
	residencies db.ResidencyRepository
}

// NewResidencyService creates a new ResidencyService instance.
func NewResidencyService(residencies db.ResidencyRepository) ResidencyService {
	return &residencyService{residencies: residencies}
}

func (s *residencyService) CreateResidency(ctx context.Context, req models.CreateResidencyRequest) (*models.Residency, error) {
	residency := &models.Residency{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Image:       req.Image,
		Facilities:  req.Facilities,
		UserEmail:   req.UserEmail,
	}
	if err := s.residencies.Create(ctx, residency); err != nil {
		if errors.Is(err, db.ErrAlreadyExists) {
			return nil, ErrResidencyExists
		}
		return nil, storeFailure("create residency", err)
	}
	return residency, nil
}

func (s *residencyService) GetResidency(ctx context.Context, id string) (*models.Residency, error) {
	residency, err := s.residencies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrResidencyNotFound
		}
		return nil, storeFailure("get residency", err)
	}
	return residency, nil
}

func (s *residencyService) ListResidencies(ctx context.Context) ([]*models.Residency, error) {
	residencies, err := s.residencies.List(ctx)
	if err != nil {
		return nil, storeFailure("list residencies", err)
	}
	return residencies, nil
}
