package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/platewise/platewise-backend/internal/app/service"
	apperrors "github.com/platewise/platewise-backend/internal/errors"
	"github.com/platewise/platewise-backend/internal/middleware"
)

type SubscriptionController struct {
	subscriptionService service.SubscriptionService
}

func NewSubscriptionController(subscriptionService service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

type PurchaseSubscriptionRequest struct {
	PackageID uint `json:"package_id" binding:"required"`
}

// ListPackages lists the purchasable plans
// GET /api/v1/packages
func (ctrl *SubscriptionController) ListPackages(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	packages, err := ctrl.subscriptionService.ListPackages()
	if err != nil {
		log.Error("Failed to list packages", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list packages")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"packages": packages,
	})
}

// Purchase books a new subscription window for the caller's restaurant
// POST /api/v1/subscriptions
func (ctrl *SubscriptionController) Purchase(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	restaurantID, ok := middleware.GetRestaurantID(c)
	if !ok {
		apperrors.RespondWithError(c, http.StatusForbidden, apperrors.RestaurantRequired,
			"No restaurant is associated with your account")
		return
	}

	var req PurchaseSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "A package ID is required")
		return
	}

	sub, err := ctrl.subscriptionService.Purchase(restaurantID, req.PackageID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPackageNotFound):
			apperrors.NotFound(c, apperrors.SubscriptionPackageNotFound, "Subscription package not found")
		case errors.Is(err, service.ErrRestaurantNotFound):
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "Restaurant not found")
		default:
			log.Error("Failed to purchase subscription", err, map[string]interface{}{
				"restaurant_id": restaurantID,
				"package_id":    req.PackageID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "purchase subscription")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Subscription activated",
		"subscription": sub,
	})
}

// ListMine lists the caller's subscription history, newest first
// GET /api/v1/subscriptions
func (ctrl *SubscriptionController) ListMine(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	restaurantID, ok := middleware.GetRestaurantID(c)
	if !ok {
		apperrors.RespondWithError(c, http.StatusForbidden, apperrors.RestaurantRequired,
			"No restaurant is associated with your account")
		return
	}

	subs, err := ctrl.subscriptionService.ListByRestaurant(restaurantID)
	if err != nil {
		log.Error("Failed to list subscriptions", err, map[string]interface{}{
			"restaurant_id": restaurantID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list subscriptions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscriptions": subs,
	})
}
