package attendance

import "time"

// Attendance is a raw clock-in/clock-out record as ingested by the mobile
// clients. The engine only ever reads these; writes happen upstream.
type Attendance struct {
	ID         string
	EmployeeID string
	ClockIn    time.Time
	ClockOut   *time.Time
	Date       time.Time // calendar day of the clock-in

	// Joined for report rows
	EmployeeFirstname *string
	EmployeeLastname  *string
}

// State is the derived lateness verdict, one-to-one with an Attendance
// record. Written exactly once; recomputation creates a new row instead of
// editing so the audit trail stays intact.
type State struct {
	ID           string
	AttendanceID string
	IsLate       bool
}
