package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tenantry/contacts-api/internal/api/shared"
	"github.com/tenantry/contacts-api/internal/domain"
	"github.com/tenantry/contacts-api/internal/service/auth"
	"github.com/tenantry/contacts-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors. A resource owned by another tenant also lands
	// here: ownership-scoped lookups report it as absent.
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors. A duplicate username is a business-rule
	// violation, not a conflict, per the API contract.
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal
// details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, domain.ErrUnauthorized):
		return "Invalid token"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrContactNotFound):
		return "Contact not found"

	case errors.Is(err, store.ErrAddressNotFound):
		return "Address not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrUsernameTaken):
		return "Username already taken"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case isDomainValidationError(err), errors.Is(err, domain.ErrValidation):
		// Domain validation messages are already written for end users.
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps an error to its status, picks the safe message
// (overridable) and writes the failure envelope, logging the raw error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, overrideMessage string) {
	status := MapErrorToStatusCode(err)
	message := overrideMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// isDomainValidationError reports whether err is one of the per-field
// domain validation sentinels, which deliberately do not wrap
// domain.ErrValidation.
func isDomainValidationError(err error) bool {
	for _, sentinel := range domainValidationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

var domainValidationErrors = []error{
	domain.ErrEmptyUsername,
	domain.ErrUsernameTooShort,
	domain.ErrUsernameTooLong,
	domain.ErrEmptyName,
	domain.ErrNameTooLong,
	domain.ErrEmptyPassword,
	domain.ErrPasswordTooShort,
	domain.ErrPasswordTooLong,
	domain.ErrEmptyFirstName,
	domain.ErrFirstNameTooLong,
	domain.ErrLastNameTooLong,
	domain.ErrContactEmailTooLong,
	domain.ErrContactPhoneTooLong,
	domain.ErrEmptyCountry,
	domain.ErrCountryTooLong,
	domain.ErrStreetTooLong,
	domain.ErrCityTooLong,
	domain.ErrProvinceTooLong,
	domain.ErrPostalCodeTooLong,
}

// SanitizeValidationError turns a go-playground/validator error into a
// short, field-scoped message suitable for the errors envelope.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'RegisterRequest.Username' Error:Field
	// validation for 'Username' failed on the 'required' tag"
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
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// validationTagMessage maps validation tags to user-friendly error messages
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gte", "gt":
		return "too small"
	case "lte", "lt":
		return "too large"
	default:
		return "validation failed"
	}
}
