package controller

import (
	"net/http"

	"github.com/Circulx/Profile-management/internal/app/model"
	"github.com/Circulx/Profile-management/internal/app/service"
	"github.com/Circulx/Profile-management/internal/errors"
	"github.com/Circulx/Profile-management/internal/middleware"
	"github.com/Circulx/Profile-management/internal/session"
	"github.com/gin-gonic/gin"
)

type SectionController struct {
	sectionService service.SectionService
	sessions       *session.Manager
}

func NewSectionController(sectionService service.SectionService, sessions *session.Manager) *SectionController {
	return &SectionController{
		sectionService: sectionService,
		sessions:       sessions,
	}
}

type ContactSectionRequest struct {
	ContactName string `json:"contact_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	EmailID     string `json:"email_id" binding:"required,email"`
	PickupTime  string `json:"pickup_time" binding:"required"`
}

type CategorySectionRequest struct {
	Categories       []string `json:"categories" binding:"required,min=1"`
	AuthorizedBrands []string `json:"authorized_brands" binding:"required,min=1"`
}

type AddressPayload struct {
	Country      string `json:"country" binding:"required"`
	State        string `json:"state" binding:"required"`
	City         string `json:"city" binding:"required"`
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
}

type AddressSectionRequest struct {
	Billing AddressPayload `json:"billing_address" binding:"required"`
	Pickup  AddressPayload `json:"pickup_address" binding:"required"`
}

type BankSectionRequest struct {
	AccountHolderName string `json:"account_holder_name" binding:"required"`
	AccountNumber     string `json:"account_number" binding:"required"`
	IFSCCode          string `json:"ifsc_code" binding:"required"`
	BankName          string `json:"bank_name" binding:"required"`
	Branch            string `json:"branch" binding:"required"`
	City              string `json:"city" binding:"required"`
	AccountType       string `json:"account_type" binding:"required"`
	BankLetter        string `json:"bank_letter"`
}

type DocumentSectionRequest struct {
	PanCard    string `json:"pan_card" binding:"required"`
	AadharCard string `json:"aadhar_card"`
	GSTIN      string `json:"gstin"`
	Signature  string `json:"signature" binding:"required"`
}

// SaveSection upserts one section for one business. The section key is a
// closed set; anything else is a 400. A missing business is a 404 and
// nothing is written.
func (ctrl *SectionController) SaveSection(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	businessID := c.Param("businessId")
	kind, err := model.ParseSectionKind(c.Param("section"))
	if err != nil {
		log.Warn("Unknown section key", map[string]interface{}{
			"section": c.Param("section"),
		})
		errors.BadRequest(c, errors.SectionUnknown, "Invalid section")
		return
	}

	record, ok := ctrl.bindSection(c, kind)
	if !ok {
		return
	}

	persisted, err := ctrl.sectionService.SaveSection(businessID, record)
	if err != nil {
		if err == service.ErrBusinessNotFound {
			errors.NotFound(c, errors.BusinessNotFound, "Business not found")
			return
		}
		log.Error("Failed to save section", err, map[string]interface{}{
			"section":     kind,
			"business_id": businessID,
		})
		info := errors.ParseStorageError(err, "section")
		errors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}

	response := gin.H{
		"message": string(kind) + " details saved successfully",
		"data":    persisted,
	}

	// A bound wizard session records the step as complete; saving the
	// documents section moves it into the terminal submitted state.
	if sessionID, hasSession := middleware.GetSessionID(c); hasSession {
		state, err := ctrl.sessions.CompleteStep(c.Request.Context(), sessionID, session.Step(kind))
		if err != nil {
			log.Warn("Failed to record section completion on session", map[string]interface{}{
				"session_id": sessionID,
				"section":    kind,
				"error":      err.Error(),
			})
		} else {
			response["session"] = state
		}
	}

	log.Info("Section saved", map[string]interface{}{
		"section":     kind,
		"business_id": businessID,
	})
	c.JSON(http.StatusOK, response)
}

// bindSection decodes the payload for the given kind into its typed
// record. Validation failures respond with the field-level cause and
// return ok=false.
func (ctrl *SectionController) bindSection(c *gin.Context, kind model.SectionKind) (model.Section, bool) {
	log := middleware.GetLoggerFromContext(c)

	fail := func(err error) (model.Section, bool) {
		log.Warn("Invalid section payload", map[string]interface{}{
			"section": kind,
			"error":   err.Error(),
		})
		errors.RespondWithValidationError(c, err.Error(), nil)
		return nil, false
	}

	switch kind {
	case model.SectionContact:
		var req ContactSectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return fail(err)
		}
		return &model.ContactSection{
			ContactName: req.ContactName,
			PhoneNumber: req.PhoneNumber,
			EmailID:     req.EmailID,
			PickupTime:  req.PickupTime,
		}, true

	case model.SectionCategory:
		var req CategorySectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return fail(err)
		}
		return &model.CategorySection{
			Categories:       model.StringArray(req.Categories),
			AuthorizedBrands: model.StringArray(req.AuthorizedBrands),
		}, true

	case model.SectionAddresses:
		var req AddressSectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return fail(err)
		}
		return &model.AddressSection{
			Billing: model.AddressFields(req.Billing),
			Pickup:  model.AddressFields(req.Pickup),
		}, true

	case model.SectionBank:
		var req BankSectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return fail(err)
		}
		return &model.BankSection{
			AccountHolderName: req.AccountHolderName,
			AccountNumber:     req.AccountNumber,
			IFSCCode:          req.IFSCCode,
			BankName:          req.BankName,
			Branch:            req.Branch,
			City:              req.City,
			AccountType:       req.AccountType,
			BankLetter:        req.BankLetter,
		}, true

	case model.SectionDocuments:
		var req DocumentSectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return fail(err)
		}
		return &model.DocumentSection{
			PanCard:    req.PanCard,
			AadharCard: req.AadharCard,
			GSTIN:      req.GSTIN,
			Signature:  req.Signature,
		}, true
	}

	// Unreachable: kind comes from ParseSectionKind
	errors.BadRequest(c, errors.SectionUnknown, "Invalid section")
	return nil, false
}
