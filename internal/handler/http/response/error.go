package response

import (
	"errors"
	"net/http"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/attendance"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/auth"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/company"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/employee"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/report"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/timeutil"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/validator"
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
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing access token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDuplicateState):
		Conflict(w, "Attendance record already classified")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrStateNotFound):
		NotFound(w, "Attendance state not found")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrUnsupportedReport):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCategoryNotResolved):
		NotFound(w, "Category resolves to no employees")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrPolicyNotFound):
		NotFound(w, "Company has no attendance policy configured")

	// Malformed date and time inputs
	case errors.Is(err, timeutil.ErrInvalidDateFormat),
		errors.Is(err, timeutil.ErrInvalidTimeFormat):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
