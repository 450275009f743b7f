package leave

import "time"

const StatusAccepted = "ACCEPTED"

// Leave is an approved-or-pending absence request spanning an inclusive
// date range.
type Leave struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Comment    *string
	Status     string

	// Joined for report rows
	EmployeeFirstname *string
	EmployeeLastname  *string
}

// Accepted reports whether the request was approved.
func (l Leave) Accepted() bool {
	return l.Status == StatusAccepted
}

// Spans reports whether day falls inside [StartDate, EndDate].
func (l Leave) Spans(day time.Time) bool {
	return !day.Before(l.StartDate) && !day.After(l.EndDate)
}

// DurationDays is the inclusive day count of the range.
func (l Leave) DurationDays() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
