package models

import "time"

// User represents a user account in the system. The email address is the
// natural key: it doubles as the Firestore document ID, which gives the
// store-level uniqueness guarantee and makes create-if-absent race safe.
type User struct {
	Email            string    `json:"email" firestore:"email"`
	Name             string    `json:"name,omitempty" firestore:"name,omitempty"`
	Image            string    `json:"image,omitempty" firestore:"image,omitempty"`
	BookedVisits     []Booking `json:"bookedVisits" firestore:"bookedVisits"`
	FavResidenciesID []string  `json:"favResidenciesID" firestore:"favResidenciesID"`
	CreatedAt        time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Booking is a reserved viewing slot for a residency. Bookings are created
// by book-visit and removed by cancel-booking; they are never mutated in
// place. A user holds at most one booking per residency.
type Booking struct {
	ResidencyID string    `json:"id" firestore:"residencyId"`
	Date        time.Time `json:"date" firestore:"date"`
}

// HasBooking reports whether the user already holds a booking for the
// given residency.
func (u *User) HasBooking(residencyID string) bool {
	for _, b := range u.BookedVisits {
		if b.ResidencyID == residencyID {
			return true
		}
	}
	return false
}

// HasFavorite reports whether the residency is in the user's favorites.
func (u *User) HasFavorite(residencyID string) bool {
	for _, id := range u.FavResidenciesID {
		if id == residencyID {
			return true
		}
	}
	return false
}
