package errors

// Error code constants returned in the "error" field of failure responses.
// Format: CATEGORY_SPECIFIC_DETAIL. The onboarding frontend maps these
// codes to user-facing messages.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // malformed or missing body
	ValidationInvalidID     = "VALIDATION_INVALID_ID"     // malformed identifier
	ValidationEmptyBody     = "VALIDATION_EMPTY_BODY"     // request body required
	ValidationFailed        = "VALIDATION_FAILED"         // schema-level field errors

	// ==================== Profile (PROFILE_) ====================
	ProfileNotFound         = "PROFILE_NOT_FOUND"         // no profile for given id
	BusinessNotFound        = "BUSINESS_NOT_FOUND"        // no business for given business id
	ProfileExportFailed     = "PROFILE_EXPORT_FAILED"     // xlsx export failed

	// ==================== Section (SECTION_) ====================
	SectionUnknown          = "SECTION_UNKNOWN"           // section key not one of the known kinds
	SectionSaveFailed       = "SECTION_SAVE_FAILED"       // upsert failed

	// ==================== Session (SESSION_) ====================
	SessionNotFound         = "SESSION_NOT_FOUND"         // no session for token
	SessionTokenInvalid     = "SESSION_TOKEN_INVALID"     // bad token
	SessionTokenExpired     = "SESSION_TOKEN_EXPIRED"     // expired token
	SessionInvalidStep      = "SESSION_INVALID_STEP"      // step name not in the wizard sequence

	// ==================== Upload (UPLOAD_) ====================
	UploadInvalidFileType   = "UPLOAD_INVALID_FILE_TYPE"  // extension not allowed
	UploadFailed            = "UPLOAD_FAILED"             // presign failed

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError     = "INTERNAL_SERVER_ERROR"     // unexpected failure
	InternalDatabaseError   = "INTERNAL_DATABASE_ERROR"   // storage-layer failure
)
