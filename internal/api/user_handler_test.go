package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"realestate-backend-go/internal/core"
	"realestate-backend-go/internal/models"
)

// stubUserService lets each test script the service layer per method.
type stubUserService struct {
	createUser     func(ctx context.Context, req models.CreateUserRequest) (*models.User, bool, error)
	bookVisit      func(ctx context.Context, email, residencyID string, date time.Time) (*models.Booking, error)
	listBookings   func(ctx context.Context, email string) ([]models.Booking, error)
	cancelBooking  func(ctx context.Context, email, residencyID string) error
	toggleFavorite func(ctx context.Context, email, residencyID string) (bool, []string, error)
	listFavorites  func(ctx context.Context, email string) ([]string, error)
}

func (s *stubUserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, bool, error) {
	return s.createUser(ctx, req)
}

func (s *stubUserService) BookVisit(ctx context.Context, email, residencyID string, date time.Time) (*models.Booking, error) {
	return s.bookVisit(ctx, email, residencyID, date)
}

func (s *stubUserService) ListBookings(ctx context.Context, email string) ([]models.Booking, error) {
	return s.listBookings(ctx, email)
}

func (s *stubUserService) CancelBooking(ctx context.Context, email, residencyID string) error {
	return s.cancelBooking(ctx, email, residencyID)
}

func (s *stubUserService) ToggleFavorite(ctx context.Context, email, residencyID string) (bool, []string, error) {
	return s.toggleFavorite(ctx, email, residencyID)
}

func (s *stubUserService) ListFavorites(ctx context.Context, email string) ([]string, error) {
	return s.listFavorites(ctx, email)
}

type stubResidencyService struct {
	create func(ctx context.Context, req models.CreateResidencyRequest) (*models.Residency, error)
	get    func(ctx context.Context, id string) (*models.Residency, error)
	list   func(ctx context.Context) ([]*models.Residency, error)
}

func (s *stubResidencyService) CreateResidency(ctx context.Context, req models.CreateResidencyRequest) (*models.Residency, error) {
	return s.create(ctx, req)
}

func (s *stubResidencyService) GetResidency(ctx context.Context, id string) (*models.Residency, error) {
	return s.get(ctx, id)
}

func (s *stubResidencyService) ListResidencies(ctx context.Context) ([]*models.Residency, error) {
	return s.list(ctx)
}

func newTestRouter(t *testing.T, us core.UserService, rs core.ResidencyService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, zap.NewNop(), us, rs)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegister_Created(t *testing.T) {
	us := &stubUserService{
		createUser: func(ctx context.Context, req models.CreateUserRequest) (*models.User, bool, error) {
			return &models.User{Email: req.Email, BookedVisits: []models.Booking{}, FavResidenciesID: []string{}}, true, nil
		},
	}
	router := newTestRouter(t, us, &stubResidencyService{})

	rec := doJSON(t, router, http.MethodPost, "/api/user/register", gin.H{"email": "a@x.com"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User created successfully", resp.Message)
	assert.Equal(t, "a@x.com", resp.User.Email)
}

func TestRegister_AlreadyExists(t *testing.T) {
	us := &stubUserService{
		createUser: func(ctx context.Context, req models.CreateUserRequest) (*models.User, bool, error) {
			return &models.User{Email: req.Email}, false, nil
		},
	}
	router := newTestRouter(t, us, &stubResidencyService{})

	rec := doJSON(t, router, http.MethodPost, "/api/user/register", gin.H{"email": "a@x.com"})

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User already exists", resp.Message)
}

func TestRegister_InvalidEmail(t *testing.T) {
	router := newTestRouter(t, &stubUserService{}, &stubResidencyService{})

	rec := doJSON(t, router, http.MethodPost, "/api/user/register", gin.H{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookVisit_Success(t *testing.T) {
	var gotResidency string
	var gotDate time.Time
	us := &stubUserService{
		bookVisit: func(ctx context.Context, email, residencyID string, date time.Time) (*models.Booking, error) {
			gotResidency = residencyID
			gotDate = date
			return &models.Booking{ResidencyID: residencyID, Date: date}, nil
		},
	}
	router := newTestRouter(t, us, &stubResidencyService{})

	rec := doJSON(t, router, http.MethodPost, "/api/user/bookVisit/L1", gin.H{"email": "a@x.com", "date": "2024-01-01"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "L1", gotResidency)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), gotDate)
	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Booked successfully", resp.Message)
}

func TestBookVisit_Duplicate(t *testing.T) {
	us := &stubUserService{
		bookVisit: func(ctx context.Context, email, residencyID string, date time.Time) (*models.Booking, error) {
			return nil, core.ErrAlreadyBooked
		},
	}
	router := newTestRouter(t, us, &stubResidencyService{})

	rec := doJSON(t, router, http.MethodPost, "/api/user/bookVisit/L1", gin.H{"email": "a@x.com", "date": "2024-01-01"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Already booked")
}

func TestBookVisit_UserNotFound(t *testing.T) {
	us := &stubUserService{
		bookVisit: func(ctx context.Context, email, residencyID string, date time.Time) (*models.Booking, error) {
			return nil, core.ErrUserNotFound
		},
	}
	router := newTestRouter(t, us, &stubResidencyService{})

	rec := doJSON(t, router, http.MethodPost, "/api/user/bookVisit/L1", gin.H{"email": "a@x.com", "date": "2024-01-01"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookVisit_BadDate(t *testing.T) {
	router := newTestRouter(t, &stubUserService{}, &stubResidencyService{})

	rec := doJSON(t, router, http.MethodPost, "/api/user/bookVisit/L1", gin.H{"email": "a@x.com", "date": "next tuesday"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid visit date")
}

func TestAllBookings(t *testing.T) {
	us := &stubUserService{
		listBookings: func(ctx context.Context, email string) ([]models.Booking, error) {
			return []models.Booking{{ResidencyID: "L1", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}}, nil
		},
	}
	router := newTestRouter(t, us, &stubResidencyService{})

	rec := doJSON(t, router, http.MethodPost, "/api/user/allBookings", gin.H{"email": "a@x.com"})

	assert.Equal(t, http.StatusOK, rec.Code)
	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, "L1", bookings[0].ResidencyID)
}

func TestCancelBooking_NotBooked(t *testing.T) {
	us := &stubUserService{
		cancelBooking: func(ctx context.Context, email, residencyID string) error {
			return core.ErrBookingNotFound
		},
	}
	router := newTestRouter(t, us, &stubResidencyService{})

	rec := doJSON(t, router, http.MethodPost, "/api/user/removeBooking/L1", gin.H{"email": "a@x.com"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not booked")
}

func TestToggleFavorite_Messages(t *testing.T) {
	added := true
	us := &stubUserService{
		toggleFavorite: func(ctx context.Context, email, residencyID string) (bool, []string, error) {
			if added {
				return true, []string{residencyID}, nil
			}
			return false, []string{}, nil
		},
	}
	router := newTestRouter(t, us, &stubResidencyService{})

	rec := doJSON(t, router, http.MethodPost, "/api/user/toFav/R1", gin.H{"email": "a@x.com"})
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp FavoritesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Added to favorites", resp.Message)
	assert.Equal(t, []string{"R1"}, resp.FavResidenciesID)

	added = false
	rec = doJSON(t, router, http.MethodPost, "/api/user/toFav/R1", gin.H{"email": "a@x.com"})
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Removed from favorites", resp.Message)
	assert.Empty(t, resp.FavResidenciesID)
}

func TestAllFavorites_StoreFailure(t *testing.T) {
	us := &stubUserService{
		listFavorites: func(ctx context.Context, email string) ([]string, error) {
			return nil, core.ErrStoreUnavailable
		},
	}
	router := newTestRouter(t, us, &stubResidencyService{})

	rec := doJSON(t, router, http.MethodPost, "/api/user/allFav", gin.H{"email": "a@x.com"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &stubUserService{}, &stubResidencyService{})

	rec := doJSON(t, router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "UP")
}
