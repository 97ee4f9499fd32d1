package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/Circulx/Profile-management/internal/app/model"
	"github.com/Circulx/Profile-management/internal/app/repository"
	"github.com/Circulx/Profile-management/internal/app/service"
	"github.com/Circulx/Profile-management/internal/db"
	"github.com/Circulx/Profile-management/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sectionControllerFixture struct {
	db       *gorm.DB
	router   *gin.Engine
	profiles service.ProfileService
	sessions *session.Manager
}

// setupSectionControllerTest wires the full create-business and
// save-section surface. Middleware passed in runs before the handlers,
// mirroring how the session middleware sits in front of them in the
// real router.
func setupSectionControllerTest(t *testing.T, mw ...gin.HandlerFunc) *sectionControllerFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	profileRepo := repository.NewProfileRepository(testDB)
	sectionRepo := repository.NewSectionRepository(testDB)
	profileService := service.NewProfileService(profileRepo)
	sectionService := service.NewSectionService(profileRepo, sectionRepo, testDB)
	sessions := session.NewManager(session.NewMemoryStore())

	profileController := NewProfileController(profileService, service.NewExportService(profileRepo), sessions)
	sectionController := NewSectionController(sectionService, sessions)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	router.POST("/profile/business", profileController.CreateBusiness)
	router.POST("/profile/:businessId/:section", sectionController.SaveSection)

	return &sectionControllerFixture{
		db:       testDB,
		router:   router,
		profiles: profileService,
		sessions: sessions,
	}
}

func (f *sectionControllerFixture) createBusiness(t *testing.T) string {
	profile, err := f.profiles.CreateBusiness(&model.BusinessProfile{
		LegalEntityName:    "Acme Traders Private Limited",
		TradeName:          "Acme Traders",
		GSTIN:              "27AAPFU0939F1ZV",
		Country:            "India",
		Pincode:            "400001",
		State:              "Maharashtra",
		City:               "Mumbai",
		BusinessEntityType: "private_limited",
	})
	require.NoError(t, err)
	return profile.BusinessID
}

func (f *sectionControllerFixture) postSection(t *testing.T, businessID, section string, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	url := fmt.Sprintf("/profile/%s/%s", businessID, section)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func contactSectionBody() map[string]interface{} {
	return map[string]interface{}{
		"contact_name": "Ravi Kumar",
		"phone_number": "+919800000001",
		"email_id":     "ravi@acme.example",
		"pickup_time":  "10:00-18:00",
	}
}

func documentSectionBody() map[string]interface{} {
	return map[string]interface{}{
		"pan_card":  "https://files.example/pan.pdf",
		"signature": "https://files.example/signature.png",
	}
}

func TestSectionController_SaveContact(t *testing.T) {
	f := setupSectionControllerTest(t)
	businessID := f.createBusiness(t)

	w := f.postSection(t, businessID, "contact", contactSectionBody())
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	data := response["data"].(map[string]interface{})
	assert.Equal(t, businessID, data["business_id"])
	assert.NotEmpty(t, data["contact_id"])
}

func TestSectionController_SaveSection_UnknownKey(t *testing.T) {
	f := setupSectionControllerTest(t)
	businessID := f.createBusiness(t)

	w := f.postSection(t, businessID, "warehouse", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "SECTION_UNKNOWN", response["error"])
}

func TestSectionController_SaveSection_BusinessNotFound(t *testing.T) {
	f := setupSectionControllerTest(t)

	w := f.postSection(t, "BUSMISSING", "contact", contactSectionBody())
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "BUSINESS_NOT_FOUND", response["error"])

	var count int64
	require.NoError(t, f.db.Model(&model.ContactSection{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSectionController_SaveSection_ValidationFailure(t *testing.T) {
	f := setupSectionControllerTest(t)
	businessID := f.createBusiness(t)

	body := contactSectionBody()
	body["email_id"] = "not-an-email"
	w := f.postSection(t, businessID, "contact", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSectionController_ResubmitUpdatesInPlace(t *testing.T) {
	f := setupSectionControllerTest(t)
	businessID := f.createBusiness(t)

	w := f.postSection(t, businessID, "contact", contactSectionBody())
	require.Equal(t, http.StatusOK, w.Code)

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	firstContactID := first["data"].(map[string]interface{})["contact_id"]

	changed := contactSectionBody()
	changed["phone_number"] = "+919800000099"
	w = f.postSection(t, businessID, "contact", changed)
	require.Equal(t, http.StatusOK, w.Code)

	var second map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	data := second["data"].(map[string]interface{})
	assert.Equal(t, firstContactID, data["contact_id"])
	assert.Equal(t, "+919800000099", data["phone_number"])

	var count int64
	require.NoError(t, f.db.Model(&model.ContactSection{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSectionController_DocumentsPromoteProfile(t *testing.T) {
	f := setupSectionControllerTest(t)
	businessID := f.createBusiness(t)

	w := f.postSection(t, businessID, "documents", documentSectionBody())
	require.Equal(t, http.StatusOK, w.Code)

	var profile model.BusinessProfile
	require.NoError(t, f.db.Where("business_id = ?", businessID).First(&profile).Error)
	assert.Equal(t, model.StatusUnderReview, profile.Status)
}

// Full wizard pass: create the business, save every section in order with
// a bound session, and verify the aggregate ends under review with the
// session submitted.
func TestSectionController_FullOnboardingFlow(t *testing.T) {
	var sessionID string
	f := setupSectionControllerTest(t, func(c *gin.Context) {
		c.Set("session_id", sessionID)
		c.Next()
	})

	state, err := f.sessions.Create(context.Background())
	require.NoError(t, err)
	sessionID = state.ID

	body, _ := json.Marshal(map[string]string{
		"legal_entity_name":    "Acme Traders Private Limited",
		"trade_name":           "Acme Traders",
		"gstin":                "27AAPFU0939F1ZV",
		"country":              "India",
		"pincode":              "400001",
		"state":                "Maharashtra",
		"city":                 "Mumbai",
		"business_entity_type": "private_limited",
	})
	req := httptest.NewRequest(http.MethodPost, "/profile/business", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	businessID := created["business_id"].(string)

	address := map[string]interface{}{
		"country":       "India",
		"state":         "Maharashtra",
		"city":          "Mumbai",
		"address_line1": "12 Marine Drive",
		"phone_number":  "+919800000001",
	}
	sections := []struct {
		key     string
		payload map[string]interface{}
	}{
		{"contact", contactSectionBody()},
		{"category", map[string]interface{}{
			"categories":        []string{"electronics"},
			"authorized_brands": []string{"Acme"},
		}},
		{"addresses", map[string]interface{}{
			"billing_address": address,
			"pickup_address":  address,
		}},
		{"bank", map[string]interface{}{
			"account_holder_name": "Acme Traders Private Limited",
			"account_number":      "000111222333",
			"ifsc_code":           "HDFC0000123",
			"bank_name":           "HDFC Bank",
			"branch":              "Fort",
			"city":                "Mumbai",
			"account_type":        "current",
		}},
		{"documents", documentSectionBody()},
	}

	for _, step := range sections {
		w := f.postSection(t, businessID, step.key, step.payload)
		require.Equal(t, http.StatusOK, w.Code, "saving %s section", step.key)
	}

	var profile model.BusinessProfile
	require.NoError(t, f.db.Where("business_id = ?", businessID).First(&profile).Error)
	assert.Equal(t, model.StatusUnderReview, profile.Status)

	final, err := f.sessions.Current(context.Background(), state.ID)
	require.NoError(t, err)
	assert.True(t, final.Submitted)
	assert.Equal(t, businessID, final.BusinessID)
	assert.Len(t, final.CompletedSteps, len(session.Steps()))
}
