package model

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleStaff UserRole = "staff" // default role, applicants included
	RoleOwner UserRole = "owner" // restaurant owner, set by approval only
	RoleAdmin UserRole = "admin" // platform administrator
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Phone        string         `json:"phone"`
	Role         UserRole       `gorm:"type:varchar(20);default:'staff'" json:"role"`
	RestaurantID *uint          `gorm:"index" json:"restaurant_id,omitempty"` // set at approval, never by the user
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}

func (User) TableName() string {
	return "users"
}
