package service

import (
	"errors"
	"time"

	"github.com/platewise/platewise-backend/internal/app/model"
	"github.com/platewise/platewise-backend/internal/app/repository"
	"github.com/platewise/platewise-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound   = errors.New("registration request not found")
	ErrInvalidTransition = errors.New("registration request is not pending")
	ErrApplicantNotFound = errors.New("applicant account not found")
)

// RegistrationStatusInfo is the applicant-facing projection of their latest
// request. ResubmitData never appears here; it is internal.
type RegistrationStatusInfo struct {
	HasRequest     bool                     `json:"has_request"`
	Status         model.RegistrationStatus `json:"status,omitempty"`
	RestaurantName string                   `json:"restaurant_name,omitempty"`
	SubmittedAt    *time.Time               `json:"submitted_at,omitempty"`
	ReviewedAt     *time.Time               `json:"reviewed_at,omitempty"`
	AdminNote      string                   `json:"admin_note,omitempty"`
}

type RegistrationService interface {
	Submit(userID uint, ownerName, contactInfo, restaurantName, licenseDocURL string) (*model.RegistrationRequest, error)
	Approve(requestID, adminID uint) (*model.Restaurant, error)
	Reject(requestID, adminID uint, note, resubmitData string) error
	GetStatus(userID uint) (*RegistrationStatusInfo, error)
	ListByStatus(status model.RegistrationStatus) ([]model.RegistrationRequest, error)
}

type registrationService struct {
	registrationRepo repository.RegistrationRepository
	userRepo         repository.UserRepository
	db               *gorm.DB
}

func NewRegistrationService(
	registrationRepo repository.RegistrationRepository,
	userRepo repository.UserRepository,
	db *gorm.DB,
) RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		db:               db,
	}
}

// Submit creates a new pending request. Nothing stops an applicant from
// holding several pending requests; a rejection is resolved by submitting a
// new one, never by reopening the old row.
func (s *registrationService) Submit(userID uint, ownerName, contactInfo, restaurantName, licenseDocURL string) (*model.RegistrationRequest, error) {
	logger.Info("Submitting registration request", map[string]interface{}{
		"user_id":         userID,
		"restaurant_name": restaurantName,
	})

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicantNotFound
		}
		return nil, err
	}

	req := &model.RegistrationRequest{
		UserID:         userID,
		OwnerName:      ownerName,
		ContactInfo:    contactInfo,
		RestaurantName: restaurantName,
		LicenseDocURL:  licenseDocURL,
		Status:         model.RegistrationStatusPending,
		SubmittedAt:    time.Now(),
	}

	if err := s.registrationRepo.Create(req); err != nil {
		logger.Error("Failed to submit registration request", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Registration request submitted", map[string]interface{}{
		"request_id": req.ID,
		"user_id":    userID,
	})

	return req, nil
}

// Approve resolves a pending request and provisions the tenant: the request
// flips to approved, a Restaurant owned by the applicant is created, and the
// applicant's role is elevated to owner. All three writes happen in one
// transaction; a failed approve leaves the request pending. The requester's
// existing tokens still carry the old role until their next refresh.
func (s *registrationService) Approve(requestID, adminID uint) (*model.Restaurant, error) {
	logger.Info("Approving registration request", map[string]interface{}{
		"request_id": requestID,
		"admin_id":   adminID,
	})

	now := time.Now()

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin approval transaction", tx.Error, map[string]interface{}{
			"request_id": requestID,
		})
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Transaction rolled back due to panic during approval", nil, map[string]interface{}{
				"request_id": requestID,
				"panic":      r,
			})
		}
	}()

	// Conditional update keyed on the expected prior status. Two concurrent
	// approvals race on this row and exactly one sees RowsAffected == 1.
	rows, err := s.registrationRepo.ResolveIfPending(tx, requestID, model.RegistrationStatusApproved, adminID, "", now)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if rows == 0 {
		tx.Rollback()
		return nil, s.classifyResolveFailure(requestID)
	}

	var req model.RegistrationRequest
	if err := tx.First(&req, requestID).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to load request inside approval transaction", err, map[string]interface{}{
			"request_id": requestID,
		})
		return nil, err
	}

	restaurant := &model.Restaurant{
		OwnerUserID:   req.UserID,
		Name:          req.RestaurantName,
		PhoneNumber:   req.ContactInfo,
		LicenseDocURL: req.LicenseDocURL,
	}
	if err := tx.Create(restaurant).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create restaurant in approval transaction", err, map[string]interface{}{
			"request_id": requestID,
			"user_id":    req.UserID,
		})
		return nil, err
	}

	if err := tx.Model(&model.User{}).
		Where("id = ?", req.UserID).
		Updates(map[string]interface{}{
			"role":          model.RoleOwner,
			"restaurant_id": restaurant.ID,
		}).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to elevate user role in approval transaction", err, map[string]interface{}{
			"request_id": requestID,
			"user_id":    req.UserID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to commit approval transaction", err, map[string]interface{}{
			"request_id": requestID,
		})
		return nil, err
	}

	logger.Info("Registration request approved", map[string]interface{}{
		"request_id":    requestID,
		"restaurant_id": restaurant.ID,
		"owner_user_id": req.UserID,
		"admin_id":      adminID,
	})

	return restaurant, nil
}

// Reject resolves a pending request without provisioning anything. note is
// the human-readable reason shown to the applicant; resubmitData is an
// optional structured payload kept internal.
func (s *registrationService) Reject(requestID, adminID uint, note, resubmitData string) error {
	logger.Info("Rejecting registration request", map[string]interface{}{
		"request_id": requestID,
		"admin_id":   adminID,
	})

	now := time.Now()

	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	rows, err := s.registrationRepo.ResolveIfPending(tx, requestID, model.RegistrationStatusRejected, adminID, note, now)
	if err != nil {
		tx.Rollback()
		return err
	}
	if rows == 0 {
		tx.Rollback()
		return s.classifyResolveFailure(requestID)
	}

	if resubmitData != "" {
		if err := tx.Model(&model.RegistrationRequest{}).
			Where("id = ?", requestID).
			Update("resubmit_data", resubmitData).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to store resubmission data", err, map[string]interface{}{
				"request_id": requestID,
			})
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	logger.Info("Registration request rejected", map[string]interface{}{
		"request_id": requestID,
		"admin_id":   adminID,
	})

	return nil
}

// classifyResolveFailure decides why a conditional resolve touched no rows
func (s *registrationService) classifyResolveFailure(requestID uint) error {
	req, err := s.registrationRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Registration request not found", map[string]interface{}{
				"request_id": requestID,
			})
			return ErrRequestNotFound
		}
		return err
	}

	logger.Warn("Registration request already resolved", map[string]interface{}{
		"request_id": requestID,
		"status":     req.Status,
	})
	return ErrInvalidTransition
}

// GetStatus returns the applicant's most recent request, if any. Read-only.
func (s *registrationService) GetStatus(userID uint) (*RegistrationStatusInfo, error) {
	req, err := s.registrationRepo.FindLatestByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &RegistrationStatusInfo{HasRequest: false}, nil
		}
		logger.Error("Failed to fetch registration status", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	return &RegistrationStatusInfo{
		HasRequest:     true,
		Status:         req.Status,
		RestaurantName: req.RestaurantName,
		SubmittedAt:    &req.SubmittedAt,
		ReviewedAt:     req.ReviewedAt,
		AdminNote:      req.AdminNote,
	}, nil
}

func (s *registrationService) ListByStatus(status model.RegistrationStatus) ([]model.RegistrationRequest, error) {
	if status == "" {
		status = model.RegistrationStatusPending
	}

	reqs, err := s.registrationRepo.FindByStatus(status)
	if err != nil {
		logger.Error("Failed to list registration requests", err, map[string]interface{}{
			"status": status,
		})
		return nil, err
	}

	return reqs, nil
}
