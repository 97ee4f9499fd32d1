package model

import (
	"time"

	"gorm.io/gorm"
)

// ProfileStatus is the aggregate status of a business profile
type ProfileStatus string

const (
	StatusDraft       ProfileStatus = "draft"
	StatusUnderReview ProfileStatus = "under_review"
)

// BusinessProfile is the root of the onboarding aggregate. Every section
// record references it through the public BusinessID. The profile is
// create-only through the onboarding flow; corrections go through the
// administrative update path.
type BusinessProfile struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	BusinessID string `gorm:"size:40;uniqueIndex;not null" json:"business_id"`

	LegalEntityName    string `gorm:"size:200;not null" json:"legal_entity_name"`
	TradeName          string `gorm:"size:200;not null" json:"trade_name"`
	GSTIN              string `gorm:"size:20;not null" json:"gstin"`
	Country            string `gorm:"size:100;not null" json:"country"`
	Pincode            string `gorm:"size:10;not null" json:"pincode"`
	State              string `gorm:"size:100;not null" json:"state"`
	City               string `gorm:"size:100;not null" json:"city"`
	BusinessEntityType string `gorm:"size:50;not null" json:"business_entity_type"`

	Status ProfileStatus `gorm:"size:20;not null;default:draft;index" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"` // admin delete only
}

func (BusinessProfile) TableName() string {
	return "business_profiles"
}

// BeforeCreate assigns the public business id and the initial status
func (p *BusinessProfile) BeforeCreate(tx *gorm.DB) error {
	if p.BusinessID == "" {
		p.BusinessID = newRecordID("BUS")
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	return nil
}
