package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hbnb-platform/hbnb-api/internal/api/shared"
	"github.com/hbnb-platform/hbnb-api/internal/authz"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/service"
	"github.com/hbnb-platform/hbnb-api/internal/service/auth"
	"github.com/hbnb-platform/hbnb-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes by error
// kind, so that internal error types never leak to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, authz.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, authz.ErrForbidden):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrReference),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err. Messages of
// validation, reference and authorization errors are built from their typed
// fields; everything else gets a fixed text.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var (
		validationErr *domain.ValidationError
		referenceErr  *service.ReferenceError
		forbiddenErr  *authz.ForbiddenError
	)

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, authz.ErrUnauthenticated),
		errors.Is(err, auth.ErrMissingToken):
		return "Authentication required"

	case errors.As(err, &forbiddenErr):
		return upperFirst(forbiddenErr.Reason)
	case errors.Is(err, authz.ErrForbidden):
		return "Unauthorized action"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrAmenityNotFound):
		return "Amenity not found"
	case errors.Is(err, store.ErrPlaceNotFound):
		return "Place not found"
	case errors.Is(err, store.ErrReviewNotFound):
		return "Review not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"
	case errors.Is(err, authz.ErrDuplicateReview):
		return "You have already reviewed this place"
	case errors.Is(err, store.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return "Resource already exists"

	case errors.Is(err, authz.ErrOwnPlaceReview):
		return "You cannot review your own place"
	case errors.As(err, &referenceErr):
		return fmt.Sprintf("Invalid %s: %s does not exist", referenceErr.Entity, referenceErr.ID)
	case errors.As(err, &validationErr):
		if validationErr.Field == "" {
			return "Invalid input: " + validationErr.Message
		}
		return "Invalid " + validationErr.Field + ": " + validationErr.Message
	case errors.Is(err, store.ErrUnknownAttribute):
		return "Unknown attribute"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, store.ErrInvalidEntity):
		return "Invalid input data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for a failed operation. The status and
// message are derived from err unless message is non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}

	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

// SanitizeValidationError turns validator errors into a short message naming
// the first offending field and its failed rule.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Validation error"
	}
	fe := fieldErrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages.
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min", "gt", "gte":
		return "too small"
	case "max", "lt", "lte":
		return "too large"
	case "uuid", "uuid4":
		return "invalid identifier"
	default:
		return "validation failed"
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
