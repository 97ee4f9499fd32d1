package model

import (
	"time"

	"gorm.io/gorm"
)

// DocumentSection references the uploaded verification artifacts for a
// business. Values are object URLs produced by the presigned upload flow.
// Saving this section is the final wizard step and promotes the parent
// profile to under_review.
type DocumentSection struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	DocumentID string `gorm:"size:40;uniqueIndex;not null" json:"document_id"`
	BusinessID string `gorm:"size:40;uniqueIndex;not null" json:"business_id"`

	PanCard    string `gorm:"size:500;not null" json:"pan_card"`
	AadharCard string `gorm:"size:500" json:"aadhar_card"`
	GSTIN      string `gorm:"size:500" json:"gstin"`
	Signature  string `gorm:"size:500;not null" json:"signature"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DocumentSection) TableName() string {
	return "document_sections"
}

func (s *DocumentSection) BeforeCreate(tx *gorm.DB) error {
	if s.DocumentID == "" {
		s.DocumentID = newRecordID("DOC")
	}
	return nil
}

func (s *DocumentSection) Kind() SectionKind { return SectionDocuments }

func (s *DocumentSection) BusinessRef() string { return s.BusinessID }

func (s *DocumentSection) StampBusiness(businessID string) { s.BusinessID = businessID }

func (s *DocumentSection) UpsertColumns() []string {
	return []string{"pan_card", "aadhar_card", "gstin", "signature", "updated_at"}
}
