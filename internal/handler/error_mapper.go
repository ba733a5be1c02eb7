package handler

import (
	"errors"

	"github.com/forgo/biblio/internal/model"
	"github.com/forgo/biblio/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrMemberNotFound):
		return model.NewNotFoundError("member")
	case errors.Is(err, service.ErrBookNotFound):
		return model.NewNotFoundError("book")
	case errors.Is(err, service.ErrLoanNotFound):
		return model.NewNotFoundError("loan record")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrUsernameExists),
		errors.Is(err, service.ErrISBNExists):
		return model.NewConflictError(err.Error())

	// ===== Policy Violations → 422 =====
	// Structurally valid requests the lending rules refuse
	case errors.Is(err, service.ErrBorrowLimitReached),
		errors.Is(err, service.ErrNoCopiesAvailable),
		errors.Is(err, service.ErrLoanNotActive):
		return model.NewPolicyViolationError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrUsernameRequired),
		errors.Is(err, service.ErrUsernameTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "username", Message: err.Error()}})
	case errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "password", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidRole):
		return model.NewValidationError([]model.FieldError{{Field: "role", Message: err.Error()}})

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("an unexpected error occurred")
	}
}
