package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/platewise/platewise-backend/internal/app/service"
	apperrors "github.com/platewise/platewise-backend/internal/errors"
	"github.com/platewise/platewise-backend/internal/middleware"
)

type RegistrationController struct {
	registrationService service.RegistrationService
}

func NewRegistrationController(registrationService service.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

type SubmitRegistrationRequest struct {
	OwnerName      string `json:"owner_name" binding:"required"`
	ContactInfo    string `json:"contact_info" binding:"required"`
	RestaurantName string `json:"restaurant_name" binding:"required"`
	LicenseDocURL  string `json:"license_doc_url"`
}

// Submit files a new registration request for the authenticated user
// POST /api/v1/registrations
func (ctrl *RegistrationController) Submit(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid registration submission", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid registration data")
		return
	}

	request, err := ctrl.registrationService.Submit(userID, req.OwnerName, req.ContactInfo, req.RestaurantName, req.LicenseDocURL)
	if err != nil {
		if errors.Is(err, service.ErrApplicantNotFound) {
			apperrors.Unauthorized(c, "Account no longer exists")
			return
		}
		log.Error("Failed to submit registration request", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create registration")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration request submitted",
		"request": gin.H{
			"id":              request.ID,
			"restaurant_name": request.RestaurantName,
			"status":          request.Status,
			"submitted_at":    request.SubmittedAt,
		},
	})
}

// GetStatus returns the caller's most recent request, if any
// GET /api/v1/registrations/status
func (ctrl *RegistrationController) GetStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	status, err := ctrl.registrationService.GetStatus(userID)
	if err != nil {
		log.Error("Failed to fetch registration status", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get registration")
		return
	}

	c.JSON(http.StatusOK, status)
}
