package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"realestate-backend-go/internal/core"
)

// SetupRoutes configures all application routes. Global middleware
// (logging, recovery, CORS) is expected to be applied to the router before
// this is called, in main.go. The paths mirror the original API surface.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	userService core.UserService,
	residencyService core.ResidencyService,
) {
	userHandler := NewUserHandler(userService)
	residencyHandler := NewResidencyHandler(residencyService)

	userGroup := router.Group("/api/user")
	{
		userGroup.POST("/register", userHandler.Register)
		userGroup.POST("/bookVisit/:id", userHandler.BookVisit)
		userGroup.POST("/allBookings", userHandler.AllBookings)
		userGroup.POST("/removeBooking/:id", userHandler.CancelBooking)
		userGroup.POST("/toFav/:rid", userHandler.ToggleFavorite)
		userGroup.POST("/allFav", userHandler.AllFavorites)
	}

	residencyGroup := router.Group("/api/residency")
	{
		residencyGroup.POST("/create", residencyHandler.CreateResidency)
		residencyGroup.GET("/allresd", residencyHandler.ListResidencies)
		residencyGroup.GET("/:id", residencyHandler.GetResidency)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured", zap.Strings("groups", []string{"/api/user", "/api/residency", "/health"}))
}
