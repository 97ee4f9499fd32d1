package repository

import (
	"testing"

	"github.com/Circulx/Profile-management/internal/app/model"
	"github.com/Circulx/Profile-management/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSectionTest(t *testing.T) (*gorm.DB, SectionRepository, *model.BusinessProfile) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	profiles := NewProfileRepository(testDB)
	profile := validProfile()
	require.NoError(t, profiles.Create(profile))

	return testDB, NewSectionRepository(testDB), profile
}

func TestSectionRepository_Upsert_Create(t *testing.T) {
	testDB, repo, profile := setupSectionTest(t)
	defer db.CleanupTestDB(testDB)

	section := &model.ContactSection{
		BusinessID:  profile.BusinessID,
		ContactName: "Ravi Kumar",
		PhoneNumber: "+919800000001",
		EmailID:     "ravi@acme.example",
		PickupTime:  "10:00-18:00",
	}
	require.NoError(t, repo.Upsert(section))
	assert.NotEmpty(t, section.ContactID)

	found, err := repo.FindByBusinessID(model.SectionContact, profile.BusinessID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", found.(*model.ContactSection).ContactName)
}

func TestSectionRepository_Upsert_Idempotent(t *testing.T) {
	testDB, repo, profile := setupSectionTest(t)
	defer db.CleanupTestDB(testDB)

	first := &model.ContactSection{
		BusinessID:  profile.BusinessID,
		ContactName: "Ravi Kumar",
		PhoneNumber: "+919800000001",
		EmailID:     "ravi@acme.example",
		PickupTime:  "10:00-18:00",
	}
	require.NoError(t, repo.Upsert(first))

	// Resubmission with a changed field updates in place
	second := &model.ContactSection{
		BusinessID:  profile.BusinessID,
		ContactName: "Ravi Kumar",
		PhoneNumber: "+919800000099",
		EmailID:     "ravi@acme.example",
		PickupTime:  "10:00-18:00",
	}
	require.NoError(t, repo.Upsert(second))

	var count int64
	require.NoError(t, testDB.Model(&model.ContactSection{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	found, err := repo.FindByBusinessID(model.SectionContact, profile.BusinessID)
	require.NoError(t, err)
	contact := found.(*model.ContactSection)
	assert.Equal(t, first.ContactID, contact.ContactID)
	assert.Equal(t, "+919800000099", contact.PhoneNumber)
}

func TestSectionRepository_Upsert_AllKinds(t *testing.T) {
	testDB, repo, profile := setupSectionTest(t)
	defer db.CleanupTestDB(testDB)

	address := model.AddressFields{
		Country:      "India",
		State:        "Maharashtra",
		City:         "Mumbai",
		AddressLine1: "12 Marine Drive",
		PhoneNumber:  "+919800000001",
	}

	sections := []model.Section{
		&model.CategorySection{
			BusinessID:       profile.BusinessID,
			Categories:       model.StringArray{"electronics", "appliances"},
			AuthorizedBrands: model.StringArray{"Acme"},
		},
		&model.AddressSection{
			BusinessID: profile.BusinessID,
			Billing:    address,
			Pickup:     address,
		},
		&model.BankSection{
			BusinessID:        profile.BusinessID,
			AccountHolderName: "Acme Traders Private Limited",
			AccountNumber:     "000111222333",
			IFSCCode:          "HDFC0000123",
			BankName:          "HDFC Bank",
			Branch:            "Fort",
			City:              "Mumbai",
			AccountType:       "current",
		},
		&model.DocumentSection{
			BusinessID: profile.BusinessID,
			PanCard:    "https://files.example/pan.pdf",
			Signature:  "https://files.example/signature.png",
		},
	}

	for _, section := range sections {
		require.NoError(t, repo.Upsert(section))

		found, err := repo.FindByBusinessID(section.Kind(), profile.BusinessID)
		require.NoError(t, err)
		assert.Equal(t, profile.BusinessID, found.BusinessRef())
	}
}

func TestSectionRepository_FindByBusinessID_NotFound(t *testing.T) {
	testDB, repo, profile := setupSectionTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := repo.FindByBusinessID(model.SectionBank, profile.BusinessID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSectionRepository_FindByBusinessID_UnknownKind(t *testing.T) {
	testDB, repo, profile := setupSectionTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := repo.FindByBusinessID(model.SectionKind("warehouse"), profile.BusinessID)
	assert.ErrorIs(t, err, model.ErrUnknownSectionKind)
}
