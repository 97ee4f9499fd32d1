package service

import (
	"errors"

	"github.com/Circulx/Profile-management/internal/app/model"
	"github.com/Circulx/Profile-management/internal/app/repository"
	"github.com/Circulx/Profile-management/pkg/logger"
	"gorm.io/gorm"
)

type SectionService interface {
	SaveSection(businessID string, section model.Section) (model.Section, error)
	GetSection(businessID string, kind model.SectionKind) (model.Section, error)
}

type sectionService struct {
	profileRepo repository.ProfileRepository
	sectionRepo repository.SectionRepository
	db          *gorm.DB
}

func NewSectionService(
	profileRepo repository.ProfileRepository,
	sectionRepo repository.SectionRepository,
	db *gorm.DB,
) SectionService {
	return &sectionService{
		profileRepo: profileRepo,
		sectionRepo: sectionRepo,
		db:          db,
	}
}

// SaveSection persists one section for one business: the parent must
// exist, the write is an atomic upsert keyed by business id, and saving
// the documents section also promotes the aggregate to under_review in
// the same transaction. Resubmitting an identical payload leaves the
// stored record unchanged apart from updated_at.
func (s *sectionService) SaveSection(businessID string, section model.Section) (model.Section, error) {
	logger.Info("Saving profile section", map[string]interface{}{
		"section":     section.Kind(),
		"business_id": businessID,
	})

	// Referential precondition: no section without its business
	if _, err := s.profileRepo.FindByBusinessID(businessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Section save rejected, business not found", map[string]interface{}{
				"section":     section.Kind(),
				"business_id": businessID,
			})
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	section.StampBusiness(businessID)

	if section.Kind() == model.SectionDocuments {
		// The one cross-entity effect in the flow: the documents upsert
		// and the draft -> under_review promotion commit together.
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := s.sectionRepo.UpsertTx(tx, section); err != nil {
				return err
			}
			promoted, err := s.profileRepo.PromoteStatusTx(
				tx, businessID, model.StatusDraft, model.StatusUnderReview,
			)
			if err != nil {
				return err
			}
			if !promoted {
				// Resubmission after an earlier promotion; the guard on
				// the current status keeps the transition exactly-once.
				logger.Debug("Profile already under review, promotion skipped", map[string]interface{}{
					"business_id": businessID,
				})
			}
			return nil
		})
		if err != nil {
			logger.Error("Failed to save documents section", err, map[string]interface{}{
				"business_id": businessID,
			})
			return nil, err
		}
	} else {
		if err := s.sectionRepo.Upsert(section); err != nil {
			logger.Error("Failed to save profile section", err, map[string]interface{}{
				"section":     section.Kind(),
				"business_id": businessID,
			})
			return nil, err
		}
	}

	// Echo the persisted record with its generated id and timestamps
	persisted, err := s.sectionRepo.FindByBusinessID(section.Kind(), businessID)
	if err != nil {
		return nil, err
	}

	logger.Info("Profile section saved", map[string]interface{}{
		"section":     section.Kind(),
		"business_id": businessID,
	})
	return persisted, nil
}

func (s *sectionService) GetSection(businessID string, kind model.SectionKind) (model.Section, error) {
	section, err := s.sectionRepo.FindByBusinessID(kind, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return section, nil
}
