package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/attendance"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/dashboard"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/employee"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/leave"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/timeutil"
)

// weekdayNames indexes weekday labels by timeutil.ISOWeekday, Monday first.
var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

type DashboardServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	leave.LeaveRepository
}

// WeeklyAttendanceSummary implements dashboard.DashboardService.
func (d *DashboardServiceImpl) WeeklyAttendanceSummary(ctx context.Context, startOfWeek time.Time) (dashboard.WeeklyAttendanceResponse, error) {
	// Normalize any day to the Monday of its week.
	weekStart := timeutil.Day(startOfWeek).AddDate(0, 0, -timeutil.ISOWeekday(startOfWeek))
	weekEnd := weekStart.AddDate(0, 0, 6)

	records, err := d.AttendanceRepository.FetchRange(ctx, weekStart, weekEnd, nil)
	if err != nil {
		return dashboard.WeeklyAttendanceResponse{}, fmt.Errorf("failed to fetch weekly attendance: %w", err)
	}

	attendanceIDs := make([]string, 0, len(records))
	for _, record := range records {
		attendanceIDs = append(attendanceIDs, record.ID)
	}

	states, err := d.AttendanceRepository.FetchStates(ctx, attendanceIDs)
	if err != nil {
		return dashboard.WeeklyAttendanceResponse{}, fmt.Errorf("failed to fetch attendance states: %w", err)
	}

	buckets := make([]dashboard.AttendanceBucket, 7)
	for i := range buckets {
		buckets[i].Weekday = weekdayNames[i]
	}

	for _, record := range records {
		day := timeutil.Day(record.Date)
		if day.Before(weekStart) || day.After(weekEnd) {
			continue
		}
		idx := timeutil.ISOWeekday(day)

		buckets[idx].Present++
		// A record whose classification never ran counts as on time.
		if state, ok := states[record.ID]; ok && state.IsLate {
			buckets[idx].Late++
		} else {
			buckets[idx].OnTime++
		}
	}

	return dashboard.WeeklyAttendanceResponse{
		WeekStart: weekStart.Format(timeutil.DateLayout),
		Buckets:   buckets,
	}, nil
}

// Stats implements dashboard.DashboardService.
func (d *DashboardServiceImpl) Stats(ctx context.Context) (dashboard.StatsResponse, error) {
	now := time.Now().UTC()

	total, err := d.EmployeeRepository.CountAll(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	attended, err := d.AttendanceRepository.CountSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count recent attendance: %w", err)
	}

	onLeave, err := d.LeaveRepository.CountAccepted(ctx, timeutil.Day(now))
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count employees on leave: %w", err)
	}

	percentage := 0.0
	if total > 0 {
		percentage = math.Ceil(float64(attended) / float64(total) * 100)
	}

	return dashboard.StatsResponse{
		TotalEmployees:       total,
		AttendancePercentage: percentage,
		OnLeaveToday:         onLeave,
	}, nil
}

func NewDashboardService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		LeaveRepository:      leaveRepo,
	}
}
