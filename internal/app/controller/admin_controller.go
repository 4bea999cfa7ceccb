package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/platewise/platewise-backend/internal/app/model"
	"github.com/platewise/platewise-backend/internal/app/service"
	apperrors "github.com/platewise/platewise-backend/internal/errors"
	"github.com/platewise/platewise-backend/internal/middleware"
)

// AdminController is the review queue for registration requests
type AdminController struct {
	registrationService service.RegistrationService
}

func NewAdminController(registrationService service.RegistrationService) *AdminController {
	return &AdminController{
		registrationService: registrationService,
	}
}

type RejectRegistrationRequest struct {
	Note         string `json:"note" binding:"required"`
	ResubmitData string `json:"resubmit_data"`
}

// ListRegistrations lists requests by status (pending by default)
// GET /api/v1/admin/registrations?status=
func (ctrl *AdminController) ListRegistrations(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	status := model.RegistrationStatus(c.Query("status"))

	requests, err := ctrl.registrationService.ListByStatus(status)
	if err != nil {
		log.Error("Failed to list registration requests", err, map[string]interface{}{
			"status": status,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list registrations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"count":    len(requests),
	})
}

// Approve approves a pending request, provisioning the restaurant and
// elevating the applicant's role in one transaction
// POST /api/v1/admin/registrations/:id/approve
func (ctrl *AdminController) Approve(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	requestID, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid request ID")
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	restaurant, err := ctrl.registrationService.Approve(requestID, adminID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			apperrors.NotFound(c, apperrors.RegistrationNotFound, "Registration request not found")
		case errors.Is(err, service.ErrInvalidTransition):
			apperrors.Conflict(c, apperrors.RegistrationInvalidTransition, "This request has already been resolved")
		default:
			log.Error("Failed to approve registration request", err, map[string]interface{}{
				"request_id": requestID,
				"admin_id":   adminID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "approve registration")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration request approved",
		"restaurant": gin.H{
			"id":            restaurant.ID,
			"name":          restaurant.Name,
			"owner_user_id": restaurant.OwnerUserID,
		},
	})
}

// Reject rejects a pending request with a reason for the applicant
// POST /api/v1/admin/registrations/:id/reject
func (ctrl *AdminController) Reject(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	requestID, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid request ID")
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req RejectRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "A rejection note is required")
		return
	}

	if err := ctrl.registrationService.Reject(requestID, adminID, req.Note, req.ResubmitData); err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			apperrors.NotFound(c, apperrors.RegistrationNotFound, "Registration request not found")
		case errors.Is(err, service.ErrInvalidTransition):
			apperrors.Conflict(c, apperrors.RegistrationInvalidTransition, "This request has already been resolved")
		default:
			log.Error("Failed to reject registration request", err, map[string]interface{}{
				"request_id": requestID,
				"admin_id":   adminID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "reject registration")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration request rejected",
	})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
