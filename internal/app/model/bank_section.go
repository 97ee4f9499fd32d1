package model

import (
	"time"

	"gorm.io/gorm"
)

// BankSection holds the settlement account details for a business
type BankSection struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	BankID     string `gorm:"size:40;uniqueIndex;not null" json:"bank_id"`
	BusinessID string `gorm:"size:40;uniqueIndex;not null" json:"business_id"`

	AccountHolderName string `gorm:"size:200;not null" json:"account_holder_name"`
	AccountNumber     string `gorm:"size:30;not null" json:"account_number"`
	IFSCCode          string `gorm:"size:20;not null" json:"ifsc_code"`
	BankName          string `gorm:"size:200;not null" json:"bank_name"`
	Branch            string `gorm:"size:200;not null" json:"branch"`
	City              string `gorm:"size:100;not null" json:"city"`
	AccountType       string `gorm:"size:30;not null" json:"account_type"` // savings, current
	BankLetter        string `gorm:"size:500" json:"bank_letter"`          // optional reference to an uploaded letter

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BankSection) TableName() string {
	return "bank_sections"
}

func (s *BankSection) BeforeCreate(tx *gorm.DB) error {
	if s.BankID == "" {
		s.BankID = newRecordID("BNK")
	}
	return nil
}

func (s *BankSection) Kind() SectionKind { return SectionBank }

func (s *BankSection) BusinessRef() string { return s.BusinessID }

func (s *BankSection) StampBusiness(businessID string) { s.BusinessID = businessID }

func (s *BankSection) UpsertColumns() []string {
	return []string{
		"account_holder_name", "account_number", "ifsc_code", "bank_name",
		"branch", "city", "account_type", "bank_letter", "updated_at",
	}
}
