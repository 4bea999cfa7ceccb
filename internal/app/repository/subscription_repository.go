package repository

import (
	"time"

	"github.com/platewise/platewise-backend/internal/app/model"
	"github.com/platewise/platewise-backend/pkg/logger"
	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(sub *model.Subscription) error
	FindByRestaurantID(restaurantID uint) ([]model.Subscription, error)
	FindActiveByRestaurantID(restaurantID uint) ([]model.Subscription, error)
	ExpireLapsed(now time.Time) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(sub *model.Subscription) error {
	logger.Debug("Creating subscription in database", map[string]interface{}{
		"restaurant_id": sub.RestaurantID,
		"package_id":    sub.PackageID,
	})

	if err := r.db.Create(sub).Error; err != nil {
		logger.Error("Failed to create subscription in database", err, map[string]interface{}{
			"restaurant_id": sub.RestaurantID,
		})
		return err
	}

	return nil
}

func (r *subscriptionRepository) FindByRestaurantID(restaurantID uint) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.
		Preload("Package").
		Where("restaurant_id = ?", restaurantID).
		Order("end_date DESC").
		Find(&subs).Error
	return subs, err
}

// FindActiveByRestaurantID returns rows whose lifecycle status is active,
// regardless of end date. Time validity is the caller's decision: the end
// date is authoritative, the status string is not.
func (r *subscriptionRepository) FindActiveByRestaurantID(restaurantID uint) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.
		Where("restaurant_id = ? AND status = ?", restaurantID, model.SubscriptionStatusActive).
		Order("end_date DESC").
		Find(&subs).Error
	return subs, err
}

// ExpireLapsed flips active rows past their end date to expired. This is
// bookkeeping for reporting; access checks never trust the status for time
// validity, so a missed sweep cannot extend anyone's access.
func (r *subscriptionRepository) ExpireLapsed(now time.Time) (int64, error) {
	result := r.db.Model(&model.Subscription{}).
		Where("status = ? AND end_date < ?", model.SubscriptionStatusActive, now).
		Update("status", model.SubscriptionStatusExpired)
	if result.Error != nil {
		logger.Error("Failed to expire lapsed subscriptions", result.Error)
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
