package model

import (
	"time"

	"gorm.io/gorm"
)

// SubscriptionPackage is a purchasable plan
type SubscriptionPackage struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string  `gorm:"uniqueIndex;not null" json:"name"`
	Description  string  `gorm:"type:text" json:"description"`
	Price        float64 `gorm:"not null" json:"price"`
	DurationDays int     `gorm:"not null" json:"duration_days"`
}

func (SubscriptionPackage) TableName() string {
	return "subscription_packages"
}
