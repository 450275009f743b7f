package report

import (
	"time"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/employee"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/validator"
)

type ReportType string

const (
	TypeAttendance ReportType = "ATTENDANCE"
	TypeVisits     ReportType = "VISITS"
	TypeLeaves     ReportType = "LEAVES"
)

func (t ReportType) Valid() bool {
	switch t {
	case TypeAttendance, TypeVisits, TypeLeaves:
		return true
	}
	return false
}

// DefaultWindowDays is the trailing window applied when a request omits
// its date bounds.
const DefaultWindowDays = 30

// ReportRequest describes one report generation call. StartDate/EndDate
// are YYYY-MM-DD; both empty means the trailing 30 days ending now.
type ReportRequest struct {
	Type       ReportType        `json:"report_type"`
	Category   employee.Category `json:"category"`
	CategoryID string            `json:"category_id"`
	StartDate  string            `json:"start_date,omitempty"`
	EndDate    string            `json:"end_date,omitempty"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "report_type",
			Message: "report_type must be ATTENDANCE, VISITS or LEAVES",
		})
	}

	if !r.Category.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be EMPLOYEE, DEPARTMENT or SERVICE",
		})
	}

	if validator.IsEmpty(r.CategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_id",
			Message: "category_id is required",
		})
	}

	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Attendance day statuses after reconciling attendance against leave.
// Present wins over OnLeave wins over Absent; a day carries exactly one.
const (
	StatusPresent = "present"
	StatusOnLeave = "on_leave"
	StatusAbsent  = "absent"
)

type VisitRow struct {
	VisitorName string  `json:"visitor_name"`
	Date        string  `json:"date"`
	CheckIn     *string `json:"check_in"`
	CheckOut    *string `json:"check_out"`
	Reason      *string `json:"reason"`
	Status      string  `json:"status"`
}

type AttendanceRow struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Date         string   `json:"date"`
	Status       string   `json:"status"`
	ClockIn      *string  `json:"clock_in"`
	ClockOut     *string  `json:"clock_out"`
	IsLate       bool     `json:"is_late"`
	Reason       *string  `json:"reason"`
	HoursWorked  *float64 `json:"hours_worked"`
}

type LeaveRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DurationDays int     `json:"duration_days"`
	Reason       *string `json:"reason"`
}

// Rows holds the row slice for exactly one report type, tagged by
// ReportResult.Type.
type Rows struct {
	Visits     []VisitRow      `json:"visits,omitempty"`
	Attendance []AttendanceRow `json:"attendance,omitempty"`
	Leaves     []LeaveRow      `json:"leaves,omitempty"`
}

// ReportResult is the engine's structured output, handed as-is to the
// renderer adapter.
type ReportResult struct {
	ReportID    string            `json:"report_id"`
	Type        ReportType        `json:"report_type"`
	Category    employee.Category `json:"category"`
	CategoryID  string            `json:"category_id"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	GeneratedAt time.Time         `json:"generated_at"`
	Rows        Rows              `json:"rows"`
	Summary     map[string]any    `json:"summary"`
}
