package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Circulx/Profile-management/internal/app/model"
	"github.com/Circulx/Profile-management/internal/app/service"
	"github.com/Circulx/Profile-management/internal/errors"
	"github.com/Circulx/Profile-management/internal/middleware"
	"github.com/Circulx/Profile-management/internal/session"
	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profileService service.ProfileService
	exportService  service.ExportService
	sessions       *session.Manager
}

func NewProfileController(
	profileService service.ProfileService,
	exportService service.ExportService,
	sessions *session.Manager,
) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		exportService:  exportService,
		sessions:       sessions,
	}
}

type BusinessRequest struct {
	LegalEntityName    string `json:"legal_entity_name" binding:"required"`
	TradeName          string `json:"trade_name" binding:"required"`
	GSTIN              string `json:"gstin" binding:"required"`
	Country            string `json:"country" binding:"required"`
	Pincode            string `json:"pincode" binding:"required"`
	State              string `json:"state" binding:"required"`
	City               string `json:"city" binding:"required"`
	BusinessEntityType string `json:"business_entity_type" binding:"required"`
}

type ProfileUpdateRequest struct {
	LegalEntityName    *string `json:"legal_entity_name"`
	TradeName          *string `json:"trade_name"`
	GSTIN              *string `json:"gstin"`
	Country            *string `json:"country"`
	Pincode            *string `json:"pincode"`
	State              *string `json:"state"`
	City               *string `json:"city"`
	BusinessEntityType *string `json:"business_entity_type"`
}

// CreateBusiness starts a new onboarding aggregate. Every call creates a
// new business in draft status; there is no dedup across attempts.
func (ctrl *ProfileController) CreateBusiness(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid business creation request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.RespondWithValidationError(c, err.Error(), nil)
		return
	}

	profile := &model.BusinessProfile{
		LegalEntityName:    req.LegalEntityName,
		TradeName:          req.TradeName,
		GSTIN:              req.GSTIN,
		Country:            req.Country,
		Pincode:            req.Pincode,
		State:              req.State,
		City:               req.City,
		BusinessEntityType: req.BusinessEntityType,
	}

	created, err := ctrl.profileService.CreateBusiness(profile)
	if err != nil {
		log.Error("Failed to create business profile", err, map[string]interface{}{
			"legal_entity_name": req.LegalEntityName,
		})
		errors.InternalError(c, "Failed to create business profile")
		return
	}

	response := gin.H{
		"message":     "Business details created successfully",
		"business_id": created.BusinessID,
		"profile":     created,
	}

	// A bound wizard session gets the new business attached and the
	// business step completed.
	if sessionID, ok := middleware.GetSessionID(c); ok {
		state, err := ctrl.sessions.BindBusiness(c.Request.Context(), sessionID, created.BusinessID)
		if err != nil {
			log.Warn("Failed to bind business to session", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		} else {
			response["session"] = state
		}
	}

	log.Info("Business profile created", map[string]interface{}{
		"business_id": created.BusinessID,
	})
	c.JSON(http.StatusCreated, response)
}

// GetProfile returns a profile by its internal identifier
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseProfileID(c)
	if !ok {
		return
	}

	profile, err := ctrl.profileService.GetProfileByID(id)
	if err != nil {
		if err == service.ErrProfileNotFound {
			errors.NotFound(c, errors.ProfileNotFound, "Profile not found")
			return
		}
		log.Error("Failed to fetch profile", err, map[string]interface{}{
			"id": id,
		})
		errors.InternalError(c, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"profile": profile,
	})
}

// UpdateProfile applies a partial administrative update
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseProfileID(c)
	if !ok {
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Request body is malformed")
		return
	}

	updates := profileUpdates(&req)
	if len(updates) == 0 {
		errors.BadRequest(c, errors.ValidationEmptyBody, "Request body is required")
		return
	}

	profile, err := ctrl.profileService.UpdateProfile(id, updates)
	if err != nil {
		switch err {
		case service.ErrProfileNotFound:
			errors.NotFound(c, errors.ProfileNotFound, "Profile not found")
		case service.ErrEmptyUpdate:
			errors.BadRequest(c, errors.ValidationEmptyBody, "Request body is required")
		default:
			log.Error("Failed to update profile", err, map[string]interface{}{
				"id": id,
			})
			info := errors.ParseStorageError(err, "profile")
			errors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		}
		return
	}

	log.Info("Profile updated", map[string]interface{}{
		"id":     id,
		"fields": len(updates),
	})
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}

// DeleteProfile is the administrative delete path
func (ctrl *ProfileController) DeleteProfile(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseProfileID(c)
	if !ok {
		return
	}

	if err := ctrl.profileService.DeleteProfile(id); err != nil {
		if err == service.ErrProfileNotFound {
			errors.NotFound(c, errors.ProfileNotFound, "Profile not found")
			return
		}
		log.Error("Failed to delete profile", err, map[string]interface{}{
			"id": id,
		})
		errors.InternalError(c, "Failed to delete profile")
		return
	}

	log.Info("Profile deleted", map[string]interface{}{
		"id": id,
	})
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile deleted successfully",
	})
}

// ListProfiles returns all profiles, most recently created first
func (ctrl *ProfileController) ListProfiles(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	profiles, err := ctrl.profileService.ListProfiles()
	if err != nil {
		log.Error("Failed to list profiles", err, nil)
		errors.InternalError(c, "Failed to fetch profiles")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Profiles retrieved successfully",
		"profiles": profiles,
		"count":    len(profiles),
	})
}

// ExportProfiles streams an xlsx workbook of all profiles
func (ctrl *ProfileController) ExportProfiles(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	workbook, err := ctrl.exportService.ExportProfiles()
	if err != nil {
		log.Error("Failed to export profiles", err, nil)
		errors.RespondWithError(c, http.StatusInternalServerError, errors.ProfileExportFailed, "Failed to export profiles")
		return
	}

	filename := fmt.Sprintf("business-profiles-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := workbook.Write(c.Writer); err != nil {
		log.Error("Failed to stream profile export", err, nil)
	}
}

func parseProfileID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid profile ID")
		return 0, false
	}
	return uint(id), true
}

func profileUpdates(req *ProfileUpdateRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	setIfPresent := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}

	setIfPresent("legal_entity_name", req.LegalEntityName)
	setIfPresent("trade_name", req.TradeName)
	setIfPresent("gstin", req.GSTIN)
	setIfPresent("country", req.Country)
	setIfPresent("pincode", req.Pincode)
	setIfPresent("state", req.State)
	setIfPresent("city", req.City)
	setIfPresent("business_entity_type", req.BusinessEntityType)
	return updates
}
