package models

// CreateUserRequest represents the request body for registering a user.
// The original accepted a loosely-shaped JSON body; here the payload is an
// explicit struct and email is required and validated.
type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}

// EmailRequest carries the user key for operations that only need the
// email (list bookings, list favorites, cancel, toggle favorite).
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// BookVisitRequest represents the request body for booking a visit. The
// residency ID comes from the URL path; Date accepts "2006-01-02" or
// RFC 3339 and is parsed by the handler.
type BookVisitRequest struct {
	Email string `json:"email" binding:"required,email"`
	Date  string `json:"date" binding:"required"`
}

// CreateResidencyRequest represents the request body for creating a
// residency listing.
type CreateResidencyRequest struct {
	Title       string                 `json:"title" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Price       int64                  `json:"price" binding:"required,gt=0"`
	Address     string                 `json:"address" binding:"required"`
	City        string                 `json:"city" binding:"required"`
	Country     string                 `json:"country" binding:"required"`
	Image       string                 `json:"image,omitempty"`
	Facilities  map[string]interface{} `json:"facilities,omitempty"`
	UserEmail   string                 `json:"userEmail" binding:"required,email"`
}
