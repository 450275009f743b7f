package dashboard

import (
	"context"
	"time"
)

// DashboardService produces the calendar-aligned summaries backing the
// admin dashboard.
type DashboardService interface {
	// WeeklyAttendanceSummary buckets the week starting at startOfWeek
	// (a Monday; other days are normalized back to one) into exactly
	// seven weekday entries.
	WeeklyAttendanceSummary(ctx context.Context, startOfWeek time.Time) (WeeklyAttendanceResponse, error)

	// Stats returns the company-wide headline numbers.
	Stats(ctx context.Context) (StatsResponse, error)
}
