package api

import "realestate-backend-go/internal/models"

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// UserResponse pairs a user record with a human-readable outcome message,
// mirroring the responses of the original API ("User created successfully"
// / "User already exists").
type UserResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// BookingResponse is returned by the book-visit endpoint.
type BookingResponse struct {
	Message string          `json:"message"`
	Booking *models.Booking `json:"booking"`
}

// MessageResponse is returned by endpoints whose only payload is an
// outcome message (cancel booking).
type MessageResponse struct {
	Message string `json:"message"`
}

// FavoritesResponse is returned by the toggle-favorite endpoint with the
// updated favorites list.
type FavoritesResponse struct {
	Message          string   `json:"message"`
	FavResidenciesID []string `json:"favResidenciesID"`
}

// ResidencyResponse is returned by the create-residency endpoint.
type ResidencyResponse struct {
	Message   string            `json:"message"`
	Residency *models.Residency `json:"residency"`
}
