package service

import (
	"strings"
	"testing"
	"time"

	"github.com/Circulx/Profile-management/internal/app/model"
	"github.com/Circulx/Profile-management/internal/app/repository"
	"github.com/Circulx/Profile-management/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProfileService(t *testing.T) (*gorm.DB, ProfileService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	return testDB, NewProfileService(repository.NewProfileRepository(testDB))
}

func businessInput() *model.BusinessProfile {
	return &model.BusinessProfile{
		LegalEntityName:    "Acme Traders Private Limited",
		TradeName:          "Acme Traders",
		GSTIN:              "27AAPFU0939F1ZV",
		Country:            "India",
		Pincode:            "400001",
		State:              "Maharashtra",
		City:               "Mumbai",
		BusinessEntityType: "private_limited",
	}
}

func TestProfileService_CreateBusiness(t *testing.T) {
	testDB, svc := setupProfileService(t)
	defer db.CleanupTestDB(testDB)

	profile, err := svc.CreateBusiness(businessInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(profile.BusinessID, "BUS"))
	assert.Equal(t, model.StatusDraft, profile.Status)
}

func TestProfileService_CreateBusiness_IgnoresCallerStatus(t *testing.T) {
	testDB, svc := setupProfileService(t)
	defer db.CleanupTestDB(testDB)

	input := businessInput()
	input.Status = model.StatusUnderReview

	profile, err := svc.CreateBusiness(input)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, profile.Status)
}

func TestProfileService_CreateBusiness_AlwaysMintsNew(t *testing.T) {
	testDB, svc := setupProfileService(t)
	defer db.CleanupTestDB(testDB)

	first, err := svc.CreateBusiness(businessInput())
	require.NoError(t, err)
	second, err := svc.CreateBusiness(businessInput())
	require.NoError(t, err)

	assert.NotEqual(t, first.BusinessID, second.BusinessID)

	profiles, err := svc.ListProfiles()
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestProfileService_GetProfileByID_NotFound(t *testing.T) {
	testDB, svc := setupProfileService(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.GetProfileByID(9999)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	testDB, svc := setupProfileService(t)
	defer db.CleanupTestDB(testDB)

	profile, err := svc.CreateBusiness(businessInput())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(profile.ID, map[string]interface{}{
		"city":  "Pune",
		"state": "Maharashtra",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pune", updated.City)
}

func TestProfileService_UpdateProfile_ProtectedFields(t *testing.T) {
	testDB, svc := setupProfileService(t)
	defer db.CleanupTestDB(testDB)

	profile, err := svc.CreateBusiness(businessInput())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(profile.ID, map[string]interface{}{
		"business_id": "BUSFORGED",
		"status":      string(model.StatusUnderReview),
		"city":        "Pune",
	})
	require.NoError(t, err)

	assert.Equal(t, profile.BusinessID, updated.BusinessID)
	assert.Equal(t, model.StatusDraft, updated.Status)
	assert.Equal(t, "Pune", updated.City)
}

func TestProfileService_UpdateProfile_Empty(t *testing.T) {
	testDB, svc := setupProfileService(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.UpdateProfile(1, map[string]interface{}{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestProfileService_DeleteProfile(t *testing.T) {
	testDB, svc := setupProfileService(t)
	defer db.CleanupTestDB(testDB)

	profile, err := svc.CreateBusiness(businessInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProfile(profile.ID))

	err = svc.DeleteProfile(profile.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_FindStaleDrafts(t *testing.T) {
	testDB, svc := setupProfileService(t)
	defer db.CleanupTestDB(testDB)

	stale, err := svc.CreateBusiness(businessInput())
	require.NoError(t, err)
	require.NoError(t, testDB.Model(stale).Update("created_at", time.Now().Add(-10*24*time.Hour)).Error)

	_, err = svc.CreateBusiness(businessInput())
	require.NoError(t, err)

	drafts, err := svc.FindStaleDrafts(7 * 24 * time.Hour)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, stale.BusinessID, drafts[0].BusinessID)
}
