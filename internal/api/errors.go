package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/farabi1038/lang-portal/internal/activity"
	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/service/study"
	"github.com/farabi1038/lang-portal/internal/service/vocab"
	"github.com/farabi1038/lang-portal/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients. The HTTP layer is the only place this mapping lives.
func MapErrorToStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	// Not found errors
	case errors.Is(err, study.ErrGroupNotFound),
		errors.Is(err, study.ErrActivityNotFound),
		errors.Is(err, study.ErrSessionNotFound),
		errors.Is(err, study.ErrWordNotFound),
		errors.Is(err, vocab.ErrWordNotFound),
		errors.Is(err, vocab.ErrGroupNotFound),
		errors.Is(err, vocab.ErrActivityNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, study.ErrSessionCompleted),
		errors.Is(err, store.ErrGroupNameExists),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, study.ErrInvalidScore),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrScoreExceedsTotal),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, activity.ErrInsufficientData),
		errors.Is(err, activity.ErrInvalidAnswer):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors
	case errors.Is(err, study.ErrWordNotFound),
		errors.Is(err, vocab.ErrWordNotFound):
		return "Word not found"

	case errors.Is(err, study.ErrGroupNotFound),
		errors.Is(err, vocab.ErrGroupNotFound):
		return "Group not found"

	case errors.Is(err, study.ErrActivityNotFound),
		errors.Is(err, vocab.ErrActivityNotFound):
		return "Study activity not found"

	case errors.Is(err, study.ErrSessionNotFound):
		return "Study session not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, study.ErrSessionCompleted):
		return "Study session already completed"

	case errors.Is(err, store.ErrGroupNameExists):
		return "Group name already exists"

	// Bad request errors
	case errors.Is(err, study.ErrInvalidScore),
		errors.Is(err, domain.ErrScoreExceedsTotal):
		return "Score must be between 0 and total"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"

	case errors.Is(err, activity.ErrInsufficientData):
		return "Not enough words for this activity"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'LaunchSessionRequest.GroupID' Error:Field
	// validation for 'GroupID' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "gt", "gte":
		return "must be positive"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
