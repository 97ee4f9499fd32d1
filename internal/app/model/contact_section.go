package model

import (
	"time"

	"gorm.io/gorm"
)

// ContactSection holds the pickup contact for a business
type ContactSection struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	ContactID  string `gorm:"size:40;uniqueIndex;not null" json:"contact_id"`
	BusinessID string `gorm:"size:40;uniqueIndex;not null" json:"business_id"`

	ContactName string `gorm:"size:200;not null" json:"contact_name"`
	PhoneNumber string `gorm:"size:30;not null" json:"phone_number"`
	EmailID     string `gorm:"size:200;not null" json:"email_id"`
	PickupTime  string `gorm:"size:100;not null" json:"pickup_time"` // pickup window, e.g. "10:00-18:00"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactSection) TableName() string {
	return "contact_sections"
}

func (s *ContactSection) BeforeCreate(tx *gorm.DB) error {
	if s.ContactID == "" {
		s.ContactID = newRecordID("CON")
	}
	return nil
}

func (s *ContactSection) Kind() SectionKind { return SectionContact }

func (s *ContactSection) BusinessRef() string { return s.BusinessID }

func (s *ContactSection) StampBusiness(businessID string) { s.BusinessID = businessID }

func (s *ContactSection) UpsertColumns() []string {
	return []string{"contact_name", "phone_number", "email_id", "pickup_time", "updated_at"}
}
