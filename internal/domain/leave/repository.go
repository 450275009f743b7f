package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// FetchOverlapping retrieves leaves intersecting [start, end]
	// (leave.start <= end AND leave.end >= start), joined with employee
	// names. A nil employeeIDs fetches for all employees.
	FetchOverlapping(ctx context.Context, start, end time.Time, employeeIDs []string) ([]Leave, error)

	// CountAccepted counts employees currently covered by an ACCEPTED
	// leave spanning the given day.
	CountAccepted(ctx context.Context, day time.Time) (int, error)
}
