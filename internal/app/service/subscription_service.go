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
	ErrNoSubscription      = errors.New("restaurant has no subscription")
	ErrSubscriptionExpired = errors.New("all subscriptions have expired")
	ErrPackageNotFound     = errors.New("subscription package not found")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
)

type SubscriptionService interface {
	Authorize(restaurantID uint) error
	Purchase(restaurantID, packageID uint) (*model.Subscription, error)
	ListPackages() ([]model.SubscriptionPackage, error)
	ListByRestaurant(restaurantID uint) ([]model.Subscription, error)
	ExpireLapsed() (int64, error)
}

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	packageRepo      repository.PackageRepository
	restaurantRepo   repository.RestaurantRepository
}

func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	packageRepo repository.PackageRepository,
	restaurantRepo repository.RestaurantRepository,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		packageRepo:      packageRepo,
		restaurantRepo:   restaurantRepo,
	}
}

// Authorize decides whether the restaurant's paid-access window is currently
// valid. It reads live rows on every call - subscriptions can lapse at any
// moment, so nothing here is cached. Among rows whose lifecycle status is
// active, the end date decides: a stale active row past its end date does
// not grant access. The two deny reasons are surfaced distinctly so the
// frontend can tell "never subscribed" from "lapsed".
func (s *subscriptionService) Authorize(restaurantID uint) error {
	subs, err := s.subscriptionRepo.FindActiveByRestaurantID(restaurantID)
	if err != nil {
		logger.Error("Failed to load subscriptions for authorization", err, map[string]interface{}{
			"restaurant_id": restaurantID,
		})
		return err
	}

	if len(subs) == 0 {
		logger.Warn("Authorization denied: no subscription", map[string]interface{}{
			"restaurant_id": restaurantID,
		})
		return ErrNoSubscription
	}

	now := time.Now()
	for _, sub := range subs {
		if !sub.EndDate.Before(now) {
			return nil
		}
	}

	logger.Warn("Authorization denied: subscriptions expired", map[string]interface{}{
		"restaurant_id": restaurantID,
		"active_rows":   len(subs),
	})
	return ErrSubscriptionExpired
}

// Purchase records a new subscription window for the restaurant. Payment is
// handled outside this service; this only books the access window.
func (s *subscriptionService) Purchase(restaurantID, packageID uint) (*model.Subscription, error) {
	logger.Info("Purchasing subscription", map[string]interface{}{
		"restaurant_id": restaurantID,
		"package_id":    packageID,
	})

	if _, err := s.restaurantRepo.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	pkg, err := s.packageRepo.FindByID(packageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Subscription package not found", map[string]interface{}{
				"package_id": packageID,
			})
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	now := time.Now()
	sub := &model.Subscription{
		RestaurantID: restaurantID,
		PackageID:    pkg.ID,
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, pkg.DurationDays),
		Status:       model.SubscriptionStatusActive,
	}

	if err := s.subscriptionRepo.Create(sub); err != nil {
		logger.Error("Failed to create subscription", err, map[string]interface{}{
			"restaurant_id": restaurantID,
			"package_id":    packageID,
		})
		return nil, err
	}

	logger.Info("Subscription purchased", map[string]interface{}{
		"subscription_id": sub.ID,
		"restaurant_id":   restaurantID,
		"end_date":        sub.EndDate,
	})

	return sub, nil
}

func (s *subscriptionService) ListPackages() ([]model.SubscriptionPackage, error) {
	packages, err := s.packageRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list subscription packages", err)
		return nil, err
	}
	return packages, nil
}

func (s *subscriptionService) ListByRestaurant(restaurantID uint) ([]model.Subscription, error) {
	subs, err := s.subscriptionRepo.FindByRestaurantID(restaurantID)
	if err != nil {
		logger.Error("Failed to list subscriptions", err, map[string]interface{}{
			"restaurant_id": restaurantID,
		})
		return nil, err
	}
	return subs, nil
}

// ExpireLapsed is invoked by the scheduler to keep lifecycle statuses honest
func (s *subscriptionService) ExpireLapsed() (int64, error) {
	count, err := s.subscriptionRepo.ExpireLapsed(time.Now())
	if err != nil {
		return 0, err
	}

	if count > 0 {
		logger.Info("Expired lapsed subscriptions", map[string]interface{}{
			"count": count,
		})
	}

	return count, nil
}
