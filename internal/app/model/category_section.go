package model

import (
	"time"

	"gorm.io/gorm"
)

// CategorySection holds the category and authorized brand tags for a business
type CategorySection struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	CategoryID string `gorm:"size:40;uniqueIndex;not null" json:"category_id"`
	BusinessID string `gorm:"size:40;uniqueIndex;not null" json:"business_id"`

	Categories       StringArray `gorm:"type:text" json:"categories"`
	AuthorizedBrands StringArray `gorm:"type:text" json:"authorized_brands"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CategorySection) TableName() string {
	return "category_sections"
}

func (s *CategorySection) BeforeCreate(tx *gorm.DB) error {
	if s.CategoryID == "" {
		s.CategoryID = newRecordID("CAT")
	}
	return nil
}

func (s *CategorySection) Kind() SectionKind { return SectionCategory }

func (s *CategorySection) BusinessRef() string { return s.BusinessID }

func (s *CategorySection) StampBusiness(businessID string) { s.BusinessID = businessID }

func (s *CategorySection) UpsertColumns() []string {
	return []string{"categories", "authorized_brands", "updated_at"}
}
