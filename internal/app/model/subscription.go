package model

import (
	"time"

	"gorm.io/gorm"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription links a restaurant to a purchased package. A restaurant keeps
// its historical rows; "current" is a query, not a pointer. Status records
// lifecycle intent only - EndDate is authoritative for time validity, so an
// `active` row past its EndDate grants no access.
type Subscription struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	PackageID uint                `gorm:"not null;index" json:"package_id"`
	Package   SubscriptionPackage `gorm:"foreignKey:PackageID" json:"package,omitempty"`

	StartDate time.Time          `gorm:"not null" json:"start_date"`
	EndDate   time.Time          `gorm:"not null;index" json:"end_date"`
	Status    SubscriptionStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
