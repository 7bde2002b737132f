package response

import (
	"errors"
	"net/http"

	"github.com/worklane/leave-backend-go/internal/domain/employee"
	"github.com/worklane/leave-backend-go/internal/domain/leave"
	"github.com/worklane/leave-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidRange):
		UnprocessableEntity(w, "Leave time range is invalid")
	case errors.Is(err, leave.ErrOverlapConflict):
		UnprocessableEntity(w, "Leave request overlaps an existing request")
	case errors.Is(err, leave.ErrInsufficientBalance):
		UnprocessableEntity(w, "Insufficient remaining leave hours")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrForbidden):
		Forbidden(w, "Operation not permitted on this leave request")

	// Employee domain errors
	case errors.Is(err, employee.ErrProfileNotFound):
		NotFound(w, "Employee profile not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
