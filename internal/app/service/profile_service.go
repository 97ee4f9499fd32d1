package service

import (
	"errors"
	"time"

	"github.com/Circulx/Profile-management/internal/app/model"
	"github.com/Circulx/Profile-management/internal/app/repository"
	"github.com/Circulx/Profile-management/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrBusinessNotFound = errors.New("business not found")
	ErrEmptyUpdate      = errors.New("no fields to update")
)

type ProfileService interface {
	CreateBusiness(profile *model.BusinessProfile) (*model.BusinessProfile, error)
	GetProfileByID(id uint) (*model.BusinessProfile, error)
	UpdateProfile(id uint, updates map[string]interface{}) (*model.BusinessProfile, error)
	ListProfiles() ([]model.BusinessProfile, error)
	DeleteProfile(id uint) error
	FindStaleDrafts(olderThan time.Duration) ([]model.BusinessProfile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// CreateBusiness creates the root of a new onboarding aggregate in draft
// status. Every call mints a new business: each submission is a new
// onboarding attempt, never an update of an earlier one.
func (s *profileService) CreateBusiness(profile *model.BusinessProfile) (*model.BusinessProfile, error) {
	logger.Info("Creating business profile", map[string]interface{}{
		"legal_entity_name": profile.LegalEntityName,
		"trade_name":        profile.TradeName,
	})

	profile.Status = model.StatusDraft
	if err := s.profileRepo.Create(profile); err != nil {
		logger.Error("Failed to create business profile", err, map[string]interface{}{
			"legal_entity_name": profile.LegalEntityName,
		})
		return nil, err
	}

	logger.Info("Business profile created", map[string]interface{}{
		"business_id": profile.BusinessID,
		"status":      profile.Status,
	})
	return profile, nil
}

func (s *profileService) GetProfileByID(id uint) (*model.BusinessProfile, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile applies a partial administrative update to the root
// record. The generated business id and the aggregate status are not
// updatable through this path.
func (s *profileService) UpdateProfile(id uint, updates map[string]interface{}) (*model.BusinessProfile, error) {
	if len(updates) == 0 {
		return nil, ErrEmptyUpdate
	}
	delete(updates, "business_id")
	delete(updates, "status")

	logger.Info("Updating business profile", map[string]interface{}{
		"id":     id,
		"fields": len(updates),
	})

	if err := s.profileRepo.UpdateFields(id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return s.profileRepo.FindByID(id)
}

func (s *profileService) ListProfiles() ([]model.BusinessProfile, error) {
	return s.profileRepo.List()
}

// DeleteProfile is the administrative delete; nothing in the normal
// onboarding workflow removes records.
func (s *profileService) DeleteProfile(id uint) error {
	logger.Info("Deleting business profile", map[string]interface{}{
		"id": id,
	})

	if err := s.profileRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	return nil
}

func (s *profileService) FindStaleDrafts(olderThan time.Duration) ([]model.BusinessProfile, error) {
	cutoff := time.Now().Add(-olderThan)
	return s.profileRepo.FindStaleDrafts(cutoff)
}
