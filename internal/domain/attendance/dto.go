package attendance

import (
	"time"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/validator"
)

// ClockInEvent mirrors the webhook payload delivered when an attendance row
// is inserted upstream.
type ClockInEvent struct {
	AttendanceID string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	ClockInTime  string `json:"clock_in_time"` // RFC3339
}

func (e *ClockInEvent) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(e.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "attendance id is required",
		})
	}

	if validator.IsEmpty(e.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDateTime(e.ClockInTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in_time",
			Message: "clock_in_time must be an ISO8601 timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DailyAttendanceRequest bounds the day-grouped attendance listing.
type DailyAttendanceRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *DailyAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EntryResponse is one attendance row decorated with the derived
// time-in-building duration.
type EntryResponse struct {
	AttendanceID   string   `json:"attendance_id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   string   `json:"employee_name"`
	ClockIn        string   `json:"clock_in"`
	ClockOut       *string  `json:"clock_out"`
	TimeInBuilding *float64 `json:"time_in_building_hours"`
}

// DayResponse groups the entries of one calendar day.
type DayResponse struct {
	Date    string          `json:"date"`
	Entries []EntryResponse `json:"entries"`
}

// DetailResponse is one attendance record joined with its lateness
// verdict. IsLate is nil when classification never ran.
type DetailResponse struct {
	AttendanceID   string   `json:"attendance_id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   string   `json:"employee_name"`
	Date           string   `json:"date"`
	ClockIn        string   `json:"clock_in"`
	ClockOut       *string  `json:"clock_out"`
	TimeInBuilding *float64 `json:"time_in_building_hours"`
	IsLate         *bool    `json:"is_late"`
}

// StateResponse is returned to the webhook caller after classification.
type StateResponse struct {
	StateID      string    `json:"state_id"`
	AttendanceID string    `json:"attendance_id"`
	IsLate       bool      `json:"is_late"`
	ClassifiedAt time.Time `json:"classified_at"`
}
