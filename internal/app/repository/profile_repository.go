package repository

import (
	"time"

	"github.com/Circulx/Profile-management/internal/app/model"
	"github.com/Circulx/Profile-management/pkg/logger"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(profile *model.BusinessProfile) error
	FindByID(id uint) (*model.BusinessProfile, error)
	FindByBusinessID(businessID string) (*model.BusinessProfile, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	List() ([]model.BusinessProfile, error)
	PromoteStatus(businessID string, from, to model.ProfileStatus) (bool, error)
	PromoteStatusTx(tx *gorm.DB, businessID string, from, to model.ProfileStatus) (bool, error)
	FindStaleDrafts(olderThan time.Time) ([]model.BusinessProfile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *model.BusinessProfile) error {
	logger.Debug("Creating business profile in database", map[string]interface{}{
		"legal_entity_name": profile.LegalEntityName,
	})

	if err := r.db.Create(profile).Error; err != nil {
		logger.Error("Failed to create business profile in database", err, map[string]interface{}{
			"legal_entity_name": profile.LegalEntityName,
		})
		return err
	}

	logger.Debug("Business profile created in database", map[string]interface{}{
		"id":          profile.ID,
		"business_id": profile.BusinessID,
	})
	return nil
}

func (r *profileRepository) FindByID(id uint) (*model.BusinessProfile, error) {
	var profile model.BusinessProfile
	err := r.db.First(&profile, id).Error
	if err != nil {
		logger.Error("Failed to find business profile by ID in database", err, map[string]interface{}{
			"id": id,
		})
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByBusinessID(businessID string) (*model.BusinessProfile, error) {
	var profile model.BusinessProfile
	err := r.db.Where("business_id = ?", businessID).First(&profile).Error
	if err != nil {
		logger.Error("Failed to find business profile by business ID in database", err, map[string]interface{}{
			"business_id": businessID,
		})
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	logger.Debug("Updating business profile fields in database", map[string]interface{}{
		"id":     id,
		"fields": len(fields),
	})

	result := r.db.Model(&model.BusinessProfile{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		logger.Error("Failed to update business profile in database", result.Error, map[string]interface{}{
			"id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *profileRepository) Delete(id uint) error {
	logger.Debug("Deleting business profile from database", map[string]interface{}{
		"id": id,
	})

	result := r.db.Delete(&model.BusinessProfile{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete business profile from database", result.Error, map[string]interface{}{
			"id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *profileRepository) List() ([]model.BusinessProfile, error) {
	var profiles []model.BusinessProfile
	err := r.db.Order("created_at DESC").Find(&profiles).Error
	if err != nil {
		logger.Error("Failed to list business profiles in database", err)
		return nil, err
	}

	logger.Debug("Business profiles listed from database", map[string]interface{}{
		"count": len(profiles),
	})
	return profiles, nil
}

func (r *profileRepository) PromoteStatus(businessID string, from, to model.ProfileStatus) (bool, error) {
	return r.PromoteStatusTx(r.db, businessID, from, to)
}

// PromoteStatusTx flips the aggregate status with a single conditional
// UPDATE guarded on the current status, so the transition happens at most
// once and never clobbers concurrent unrelated field updates.
func (r *profileRepository) PromoteStatusTx(tx *gorm.DB, businessID string, from, to model.ProfileStatus) (bool, error) {
	result := tx.Model(&model.BusinessProfile{}).
		Where("business_id = ? AND status = ?", businessID, from).
		Update("status", to)
	if result.Error != nil {
		logger.Error("Failed to promote business profile status in database", result.Error, map[string]interface{}{
			"business_id": businessID,
			"from":        from,
			"to":          to,
		})
		return false, result.Error
	}

	logger.Debug("Business profile status promotion attempted", map[string]interface{}{
		"business_id": businessID,
		"from":        from,
		"to":          to,
		"promoted":    result.RowsAffected > 0,
	})
	return result.RowsAffected > 0, nil
}

func (r *profileRepository) FindStaleDrafts(olderThan time.Time) ([]model.BusinessProfile, error) {
	var profiles []model.BusinessProfile
	err := r.db.
		Where("status = ? AND created_at < ?", model.StatusDraft, olderThan).
		Order("created_at ASC").
		Find(&profiles).Error
	if err != nil {
		logger.Error("Failed to find stale draft profiles in database", err, map[string]interface{}{
			"older_than": olderThan,
		})
		return nil, err
	}
	return profiles, nil
}
