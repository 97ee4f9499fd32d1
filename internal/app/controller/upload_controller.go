package controller

import (
	"net/http"

	"github.com/Circulx/Profile-management/internal/errors"
	"github.com/Circulx/Profile-management/internal/middleware"
	"github.com/Circulx/Profile-management/internal/storage"
	"github.com/gin-gonic/gin"
)

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(s3 *storage.S3Storage) *UploadController {
	return &UploadController{storage: s3}
}

type PresignRequest struct {
	BusinessID  string `json:"business_id" binding:"required"`
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// PresignDocumentUpload hands the client a short-lived PUT URL for one
// verification document. The resulting file URL goes into the documents
// section payload; the file itself never passes through this server.
func (ctrl *UploadController) PresignDocumentUpload(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RespondWithValidationError(c, err.Error(), nil)
		return
	}

	presigned, err := ctrl.storage.PresignDocumentUpload(req.BusinessID, req.Filename, req.ContentType)
	if err != nil {
		if err == storage.ErrInvalidFileType {
			errors.BadRequest(c, errors.UploadInvalidFileType, "Only pdf, png and jpeg documents are accepted")
			return
		}
		log.Error("Failed to presign document upload", err, map[string]interface{}{
			"business_id": req.BusinessID,
			"filename":    req.Filename,
		})
		errors.RespondWithError(c, http.StatusInternalServerError, errors.UploadFailed, "Failed to prepare upload")
		return
	}

	log.Info("Document upload presigned", map[string]interface{}{
		"business_id": req.BusinessID,
		"key":         presigned.Key,
	})
	c.JSON(http.StatusOK, gin.H{
		"message": "Upload URL generated successfully",
		"upload":  presigned,
	})
}
