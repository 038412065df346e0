package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"realestate-backend-go/internal/core"
	"realestate-backend-go/internal/models"
)

// UserHandler handles the user booking and favorites endpoints.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// mapUserErrorToStatus maps errors from core.UserService to HTTP status
// codes. Missing users are 404; duplicate bookings and cancels of absent
// bookings are 400, matching the original API. Anything else is a 500.
func mapUserErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrUserNotFound.Error()})
	case errors.Is(err, core.ErrAlreadyBooked):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Already booked"})
	case errors.Is(err, core.ErrBookingNotFound):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Not booked"})
	default:
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// Register handles POST /api/user/register. Creating an existing user is
// not an error: the existing record is returned with a 200.
func (h *UserHandler) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, created, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, UserResponse{Message: "User created successfully", User: user})
		return
	}
	c.JSON(http.StatusOK, UserResponse{Message: "User already exists", User: user})
}

// BookVisit handles POST /api/user/bookVisit/:id.
func (h *UserHandler) BookVisit(c *gin.Context) {
	residencyID := c.Param("id")

	var req models.BookVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	date, err := parseVisitDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid visit date", Details: err.Error()})
		return
	}

	booking, err := h.userService.BookVisit(c.Request.Context(), req.Email, residencyID, date)
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, BookingResponse{Message: "Booked successfully", Booking: booking})
}

// AllBookings handles POST /api/user/allBookings.
func (h *UserHandler) AllBookings(c *gin.Context) {
	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	bookings, err := h.userService.ListBookings(c.Request.Context(), req.Email)
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CancelBooking handles POST /api/user/removeBooking/:id.
func (h *UserHandler) CancelBooking(c *gin.Context) {
	residencyID := c.Param("id")

	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.userService.CancelBooking(c.Request.Context(), req.Email, residencyID); err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Cancelled successfully"})
}

// ToggleFavorite handles POST /api/user/toFav/:rid.
func (h *UserHandler) ToggleFavorite(c *gin.Context) {
	residencyID := c.Param("rid")

	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	added, favorites, err := h.userService.ToggleFavorite(c.Request.Context(), req.Email, residencyID)
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}

	message := "Removed from favorites"
	if added {
		message = "Added to favorites"
	}
	c.JSON(http.StatusOK, FavoritesResponse{Message: message, FavResidenciesID: favorites})
}

// AllFavorites handles POST /api/user/allFav.
func (h *UserHandler) AllFavorites(c *gin.Context) {
	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	favorites, err := h.userService.ListFavorites(c.Request.Context(), req.Email)
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// parseVisitDate accepts a plain date ("2006-01-02") or a full RFC 3339
// timestamp.
func parseVisitDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
