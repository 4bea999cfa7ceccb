package model

import (
	"time"

	"gorm.io/gorm"
)

// RegistrationRequest is an applicant's submission to open a restaurant tenant.
// The restaurant itself is only created when the request is approved.
type RegistrationRequest struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"not null;index" json:"user_id"` // applicant, future owner
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	OwnerName      string `gorm:"not null" json:"owner_name"`
	ContactInfo    string `gorm:"not null" json:"contact_info"`
	RestaurantName string `gorm:"not null" json:"restaurant_name"`
	LicenseDocURL  string `gorm:"type:text" json:"license_doc_url,omitempty"` // S3 URL of the business license

	// pending -> approved | rejected, both terminal. A fresh submission gets a
	// new row; resolved rows are never reopened.
	Status RegistrationStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	// AdminNote holds the human-readable rejection reason. ResubmitData holds
	// structured internal payloads and is never exposed on the applicant read path.
	AdminNote    string `gorm:"type:text" json:"admin_note,omitempty"`
	ResubmitData string `gorm:"type:text" json:"-"`

	SubmittedAt time.Time  `gorm:"not null;index" json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"` // set exactly once, at approve or reject
	ReviewedBy  *uint      `json:"reviewed_by,omitempty"` // admin who resolved the request
}

func (RegistrationRequest) TableName() string {
	return "registration_requests"
}

type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)
