package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo carries a parsed storage error
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseStorageError converts a storage-layer error into a code and a
// message safe to return to clients. Raw driver messages never leak.
func ParseStorageError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Something went wrong"}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: notFoundCode(context), Message: notFoundMessage(context)}
	}

	errStr := strings.ToLower(err.Error())

	// Unique constraint violation (23505): the atomic upsert should make
	// this unreachable for sections, so surface it as a conflict.
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		return ErrorInfo{
			Code:    SectionSaveFailed,
			Message: "A record for this business already exists",
		}
	}

	// Not-null constraint violation (23502)
	if strings.Contains(errStr, "null value") && strings.Contains(errStr, "not-null constraint") {
		return ErrorInfo{
			Code:    ValidationFailed,
			Message: "A required field is missing",
		}
	}

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "The profile store is unreachable. Please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalDatabaseError,
		Message: "Failed to persist the request",
	}
}

func notFoundCode(context string) string {
	switch context {
	case "business":
		return BusinessNotFound
	case "profile":
		return ProfileNotFound
	default:
		return ProfileNotFound
	}
}

func notFoundMessage(context string) string {
	switch context {
	case "business":
		return "Business not found"
	case "profile":
		return "Profile not found"
	default:
		return "Record not found"
	}
}
