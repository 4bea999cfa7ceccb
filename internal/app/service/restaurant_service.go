package service

import (
	"errors"

	"github.com/platewise/platewise-backend/internal/app/model"
	"github.com/platewise/platewise-backend/internal/app/repository"
	"github.com/platewise/platewise-backend/pkg/logger"
	"gorm.io/gorm"
)

type RestaurantService interface {
	GetByOwner(ownerUserID uint) (*model.Restaurant, error)
	UpdateProfile(ownerUserID uint, name, address, phoneNumber string) (*model.Restaurant, error)
}

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
}

func NewRestaurantService(restaurantRepo repository.RestaurantRepository) RestaurantService {
	return &restaurantService{restaurantRepo: restaurantRepo}
}

func (s *restaurantService) GetByOwner(ownerUserID uint) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByOwnerUserID(ownerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		logger.Error("Failed to fetch restaurant by owner", err, map[string]interface{}{
			"owner_user_id": ownerUserID,
		})
		return nil, err
	}
	return restaurant, nil
}

func (s *restaurantService) UpdateProfile(ownerUserID uint, name, address, phoneNumber string) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByOwnerUserID(ownerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	if name != "" {
		restaurant.Name = name
	}
	if address != "" {
		restaurant.Address = address
	}
	if phoneNumber != "" {
		restaurant.PhoneNumber = phoneNumber
	}

	if err := s.restaurantRepo.Update(restaurant); err != nil {
		return nil, err
	}

	logger.Info("Restaurant profile updated", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"owner_user_id": ownerUserID,
	})

	return restaurant, nil
}
