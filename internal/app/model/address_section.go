package model

import (
	"time"

	"gorm.io/gorm"
)

// AddressFields is one postal address. It is embedded twice on the
// address section with distinct column prefixes.
type AddressFields struct {
	Country      string `gorm:"size:100;not null" json:"country"`
	State        string `gorm:"size:100;not null" json:"state"`
	City         string `gorm:"size:100;not null" json:"city"`
	AddressLine1 string `gorm:"size:300;not null" json:"address_line1"`
	AddressLine2 string `gorm:"size:300" json:"address_line2"`
	PhoneNumber  string `gorm:"size:30;not null" json:"phone_number"`
}

// AddressSection holds the billing and pickup addresses for a business
type AddressSection struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	AddressID  string `gorm:"size:40;uniqueIndex;not null" json:"address_id"`
	BusinessID string `gorm:"size:40;uniqueIndex;not null" json:"business_id"`

	Billing AddressFields `gorm:"embedded;embeddedPrefix:billing_" json:"billing_address"`
	Pickup  AddressFields `gorm:"embedded;embeddedPrefix:pickup_" json:"pickup_address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AddressSection) TableName() string {
	return "address_sections"
}

func (s *AddressSection) BeforeCreate(tx *gorm.DB) error {
	if s.AddressID == "" {
		s.AddressID = newRecordID("ADD")
	}
	return nil
}

func (s *AddressSection) Kind() SectionKind { return SectionAddresses }

func (s *AddressSection) BusinessRef() string { return s.BusinessID }

func (s *AddressSection) StampBusiness(businessID string) { s.BusinessID = businessID }

func (s *AddressSection) UpsertColumns() []string {
	return []string{
		"billing_country", "billing_state", "billing_city",
		"billing_address_line1", "billing_address_line2", "billing_phone_number",
		"pickup_country", "pickup_state", "pickup_city",
		"pickup_address_line1", "pickup_address_line2", "pickup_phone_number",
		"updated_at",
	}
}
