package repository

import (
	"time"

	"github.com/platewise/platewise-backend/internal/app/model"
	"github.com/platewise/platewise-backend/pkg/logger"
	"gorm.io/gorm"
)

type RegistrationRepository interface {
	Create(req *model.RegistrationRequest) error
	FindByID(id uint) (*model.RegistrationRequest, error)
	FindLatestByUserID(userID uint) (*model.RegistrationRequest, error)
	FindByStatus(status model.RegistrationStatus) ([]model.RegistrationRequest, error)
	ResolveIfPending(tx *gorm.DB, id uint, to model.RegistrationStatus, adminID uint, note string, now time.Time) (int64, error)
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(req *model.RegistrationRequest) error {
	logger.Debug("Creating registration request in database", map[string]interface{}{
		"user_id":         req.UserID,
		"restaurant_name": req.RestaurantName,
	})

	if err := r.db.Create(req).Error; err != nil {
		logger.Error("Failed to create registration request in database", err, map[string]interface{}{
			"user_id": req.UserID,
		})
		return err
	}

	return nil
}

func (r *registrationRepository) FindByID(id uint) (*model.RegistrationRequest, error) {
	var req model.RegistrationRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// FindLatestByUserID returns the applicant's most recently submitted request
func (r *registrationRepository) FindLatestByUserID(userID uint) (*model.RegistrationRequest, error) {
	var req model.RegistrationRequest
	err := r.db.
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *registrationRepository) FindByStatus(status model.RegistrationStatus) ([]model.RegistrationRequest, error) {
	var reqs []model.RegistrationRequest
	err := r.db.
		Preload("User").
		Where("status = ?", status).
		Order("submitted_at DESC").
		Find(&reqs).Error
	return reqs, err
}

// ResolveIfPending flips a request out of pending with compare-and-swap
// semantics: the UPDATE is conditioned on the prior status, so concurrent
// resolutions race on the database row and exactly one wins. Returns the
// number of rows affected; zero means the request was missing or already
// resolved - the caller distinguishes the two.
func (r *registrationRepository) ResolveIfPending(
	tx *gorm.DB,
	id uint,
	to model.RegistrationStatus,
	adminID uint,
	note string,
	now time.Time,
) (int64, error) {
	updates := map[string]interface{}{
		"status":      to,
		"reviewed_at": now,
		"reviewed_by": adminID,
	}
	if note != "" {
		updates["admin_note"] = note
	}

	result := tx.Model(&model.RegistrationRequest{}).
		Where("id = ? AND status = ?", id, model.RegistrationStatusPending).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Failed to resolve registration request", result.Error, map[string]interface{}{
			"request_id": id,
			"to_status":  to,
		})
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
