package repository

import (
	"github.com/Circulx/Profile-management/internal/app/model"
	"github.com/Circulx/Profile-management/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SectionRepository interface {
	Upsert(section model.Section) error
	UpsertTx(tx *gorm.DB, section model.Section) error
	FindByBusinessID(kind model.SectionKind, businessID string) (model.Section, error)
}

type sectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) Upsert(section model.Section) error {
	return r.UpsertTx(r.db, section)
}

// UpsertTx persists the section as a single INSERT ... ON CONFLICT
// (business_id) DO UPDATE. Only the payload columns are assigned on
// conflict; the generated section id and created_at survive resubmission.
// One statement, so two concurrent submissions for the same business can
// never create duplicate section records.
func (r *sectionRepository) UpsertTx(tx *gorm.DB, section model.Section) error {
	logger.Debug("Upserting section in database", map[string]interface{}{
		"section":     section.Kind(),
		"business_id": section.BusinessRef(),
	})

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "business_id"}},
		DoUpdates: clause.AssignmentColumns(section.UpsertColumns()),
	}).Create(section).Error
	if err != nil {
		logger.Error("Failed to upsert section in database", err, map[string]interface{}{
			"section":     section.Kind(),
			"business_id": section.BusinessRef(),
		})
		return err
	}

	logger.Debug("Section upserted in database", map[string]interface{}{
		"section":     section.Kind(),
		"business_id": section.BusinessRef(),
	})
	return nil
}

func (r *sectionRepository) FindByBusinessID(kind model.SectionKind, businessID string) (model.Section, error) {
	var (
		section model.Section
		err     error
	)

	switch kind {
	case model.SectionContact:
		var record model.ContactSection
		err = r.db.Where("business_id = ?", businessID).First(&record).Error
		section = &record
	case model.SectionCategory:
		var record model.CategorySection
		err = r.db.Where("business_id = ?", businessID).First(&record).Error
		section = &record
	case model.SectionAddresses:
		var record model.AddressSection
		err = r.db.Where("business_id = ?", businessID).First(&record).Error
		section = &record
	case model.SectionBank:
		var record model.BankSection
		err = r.db.Where("business_id = ?", businessID).First(&record).Error
		section = &record
	case model.SectionDocuments:
		var record model.DocumentSection
		err = r.db.Where("business_id = ?", businessID).First(&record).Error
		section = &record
	default:
		return nil, model.ErrUnknownSectionKind
	}

	if err != nil {
		logger.Error("Failed to find section by business ID in database", err, map[string]interface{}{
			"section":     kind,
			"business_id": businessID,
		})
		return nil, err
	}
	return section, nil
}
