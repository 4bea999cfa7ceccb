package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/platewise/platewise-backend/internal/app/service"
	apperrors "github.com/platewise/platewise-backend/internal/errors"
	"github.com/platewise/platewise-backend/internal/middleware"
)

type RestaurantController struct {
	restaurantService service.RestaurantService
}

func NewRestaurantController(restaurantService service.RestaurantService) *RestaurantController {
	return &RestaurantController{
		restaurantService: restaurantService,
	}
}

type UpdateRestaurantRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

// GetMine returns the caller's restaurant
// GET /api/v1/restaurants/me
func (ctrl *RestaurantController) GetMine(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	restaurant, err := ctrl.restaurantService.GetByOwner(userID)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "Restaurant not found")
			return
		}
		log.Error("Failed to fetch restaurant", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant,
	})
}

// UpdateMine updates the caller's restaurant profile
// PUT /api/v1/restaurants/me
func (ctrl *RestaurantController) UpdateMine(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid restaurant data")
		return
	}

	restaurant, err := ctrl.restaurantService.UpdateProfile(userID, req.Name, req.Address, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "Restaurant not found")
			return
		}
		log.Error("Failed to update restaurant", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Restaurant updated",
		"restaurant": restaurant,
	})
}
