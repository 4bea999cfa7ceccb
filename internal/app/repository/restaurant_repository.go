package repository

import (
	"github.com/platewise/platewise-backend/internal/app/model"
	"github.com/platewise/platewise-backend/pkg/logger"
	"gorm.io/gorm"
)

type RestaurantRepository interface {
	FindByID(id uint) (*model.Restaurant, error)
	FindByOwnerUserID(ownerUserID uint) (*model.Restaurant, error)
	Update(restaurant *model.Restaurant) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

// Restaurants are only ever created inside the approval transaction, so this
// repository intentionally has no Create.

func (r *restaurantRepository) FindByID(id uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindByOwnerUserID(ownerUserID uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.Where("owner_user_id = ?", ownerUserID).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) Update(restaurant *model.Restaurant) error {
	logger.Debug("Updating restaurant in database", map[string]interface{}{
		"restaurant_id": restaurant.ID,
	})

	if err := r.db.Save(restaurant).Error; err != nil {
		logger.Error("Failed to update restaurant in database", err, map[string]interface{}{
			"restaurant_id": restaurant.ID,
		})
		return err
	}

	return nil
}
