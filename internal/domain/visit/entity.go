package visit

import "time"

// Visit is a visitor check-in hosted by exactly one of an employee, a
// department or a service. Which host field is set is enforced at
// creation, upstream of the engine.
type Visit struct {
	ID             string
	VisitorID      string
	HostEmployee   *string
	HostDepartment *string
	HostService    *string
	Date           time.Time
	CheckInAt      *time.Time
	CheckOutAt     *time.Time
	Reason         *string
	Status         string
	VehicleID      *string
	RegNo          *string

	// Joined for report rows
	VisitorFirstname *string
	VisitorLastname  *string
}

// Visit status values as stored.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// VisitorName returns the display name used in report rows.
func (v Visit) VisitorName() string {
	first, last := "", ""
	if v.VisitorFirstname != nil {
		first = *v.VisitorFirstname
	}
	if v.VisitorLastname != nil {
		last = *v.VisitorLastname
	}
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
