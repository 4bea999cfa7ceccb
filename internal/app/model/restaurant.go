package model

import (
	"time"

	"gorm.io/gorm"
)

// Restaurant is a tenant. Rows are created only by an approved registration
// request; OwnerUserID is set once at creation.
type Restaurant struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerUserID uint `gorm:"not null;index" json:"owner_user_id"`
	Owner       User `gorm:"foreignKey:OwnerUserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	Name          string `gorm:"not null" json:"name"`
	Address       string `gorm:"type:text" json:"address"`
	PhoneNumber   string `gorm:"type:varchar(30)" json:"phone_number"`
	LicenseDocURL string `gorm:"type:text" json:"license_doc_url,omitempty"`

	Subscriptions []Subscription `gorm:"foreignKey:RestaurantID" json:"subscriptions,omitempty"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
