package repository

import (
	"github.com/platewise/platewise-backend/internal/app/model"
	"gorm.io/gorm"
)

type PackageRepository interface {
	Create(pkg *model.SubscriptionPackage) error
	FindAll() ([]model.SubscriptionPackage, error)
	FindByID(id uint) (*model.SubscriptionPackage, error)
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(pkg *model.SubscriptionPackage) error {
	return r.db.Create(pkg).Error
}

func (r *packageRepository) FindAll() ([]model.SubscriptionPackage, error) {
	var packages []model.SubscriptionPackage
	err := r.db.Order("price ASC").Find(&packages).Error
	return packages, err
}

func (r *packageRepository) FindByID(id uint) (*model.SubscriptionPackage, error) {
	var pkg model.SubscriptionPackage
	if err := r.db.First(&pkg, id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}
