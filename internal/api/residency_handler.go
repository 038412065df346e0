package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"realestate-backend-go/internal/core"
	"realestate-backend-go/internal/models"
)

// ResidencyHandler handles the residency listing endpoints.
type ResidencyHandler struct {
	residencyService core.ResidencyService
}

// NewResidencyHandler creates a new ResidencyHandler.
func NewResidencyHandler(rs core.ResidencyService) *ResidencyHandler {
	return &ResidencyHandler{residencyService: rs}
}

func mapResidencyErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrResidencyNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrResidencyNotFound.Error()})
	case errors.Is(err, core.ErrResidencyExists):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrResidencyExists.Error()})
	default:
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// CreateResidency handles POST /api/residency/create.
func (h *ResidencyHandler) CreateResidency(c *gin.Context) {
	var req models.CreateResidencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	residency, err := h.residencyService.CreateResidency(c.Request.Context(), req)
	if err != nil {
		mapResidencyErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, ResidencyResponse{Message: "Residency created successfully", Residency: residency})
}

// ListResidencies handles GET /api/residency/allresd.
func (h *ResidencyHandler) ListResidencies(c *gin.Context) {
	residencies, err := h.residencyService.ListResidencies(c.Request.Context())
	if err != nil {
		mapResidencyErrorToStatus(c, err)
		return
	}
	if residencies == nil {
		residencies = []*models.Residency{}
	}
	c.JSON(http.StatusOK, residencies)
}

// GetResidency handles GET /api/residency/:id.
func (h *ResidencyHandler) GetResidency(c *gin.Context) {
	residency, err := h.residencyService.GetResidency(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapResidencyErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, residency)
}
