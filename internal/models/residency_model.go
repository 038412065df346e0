package models

import "time"

// Residency represents a property listing. Bookings and favorites refer to
// residencies by ID only; deleting a residency does not cascade into user
// documents.
type Residency struct {
	ID          string                 `json:"id" firestore:"-"` // Firestore document ID
	Title       string                 `json:"title" firestore:"title"`
	Description string                 `json:"description" firestore:"description"`
	Price       int64                  `json:"price" firestore:"price"`
	Address     string                 `json:"address" firestore:"address"`
	City        string                 `json:"city" firestore:"city"`
	Country     string                 `json:"country" firestore:"country"`
	Image       string                 `json:"image,omitempty" firestore:"image,omitempty"`
	Facilities  map[string]interface{} `json:"facilities,omitempty" firestore:"facilities,omitempty"`
	UserEmail   string                 `json:"userEmail" firestore:"userEmail"`
	CreatedAt   time.Time              `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt" firestore:"updatedAt"`
}
