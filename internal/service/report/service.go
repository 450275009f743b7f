package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/attendance"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/employee"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/leave"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/report"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/visit"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/timeutil"
	"github.com/google/uuid"
)

// window is a resolved inclusive date range, both bounds at midnight UTC.
type window struct {
	start time.Time
	end   time.Time
}

type rowBuilder func(ctx context.Context, req report.ReportRequest, w window) (report.Rows, map[string]any, error)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	leave.LeaveRepository
	visit.VisitRepository

	builders map[report.ReportType]rowBuilder
}

// Generate implements report.ReportService.
func (r *ReportServiceImpl) Generate(ctx context.Context, req report.ReportRequest) (report.ReportResult, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResult{}, err
	}

	builder, ok := r.builders[req.Type]
	if !ok {
		return report.ReportResult{}, report.ErrUnsupportedReport
	}

	w, err := resolveWindow(req.StartDate, req.EndDate, time.Now().UTC())
	if err != nil {
		return report.ReportResult{}, err
	}

	rows, summary, err := builder(ctx, req, w)
	if err != nil {
		return report.ReportResult{}, err
	}

	return report.ReportResult{
		ReportID:    uuid.NewString(),
		Type:        req.Type,
		Category:    req.Category,
		CategoryID:  req.CategoryID,
		StartDate:   w.start.Format(timeutil.DateLayout),
		EndDate:     w.end.Format(timeutil.DateLayout),
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
		Summary:     summary,
	}, nil
}

// resolveWindow applies the trailing default window to missing bounds: an
// absent end is now, an absent start is end minus the default window.
func resolveWindow(startDate, endDate string, now time.Time) (window, error) {
	end := timeutil.Day(now)
	if endDate != "" {
		parsed, err := timeutil.EnforceDate(endDate)
		if err != nil {
			return window{}, err
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -report.DefaultWindowDays)
	if startDate != "" {
		parsed, err := timeutil.EnforceDate(startDate)
		if err != nil {
			return window{}, err
		}
		start = parsed
	}

	if start.After(end) {
		return window{}, report.ErrInvalidDateRange
	}

	return window{start: start, end: end}, nil
}

func (r *ReportServiceImpl) buildAttendance(ctx context.Context, req report.ReportRequest, w window) (report.Rows, map[string]any, error) {
	employees, err := r.EmployeeRepository.ResolveEmployeeSet(ctx, req.Category, req.CategoryID)
	if err != nil {
		return report.Rows{}, nil, err
	}

	employeeIDs := make([]string, 0, len(employees))
	for _, e := range employees {
		employeeIDs = append(employeeIDs, e.ID)
	}

	records, err := r.AttendanceRepository.FetchRange(ctx, w.start, w.end, employeeIDs)
	if err != nil {
		return report.Rows{}, nil, fmt.Errorf("failed to fetch attendance records: %w", err)
	}

	attendanceIDs := make([]string, 0, len(records))
	for _, record := range records {
		attendanceIDs = append(attendanceIDs, record.ID)
	}
	states, err := r.AttendanceRepository.FetchStates(ctx, attendanceIDs)
	if err != nil {
		return report.Rows{}, nil, fmt.Errorf("failed to fetch attendance states: %w", err)
	}

	leaves, err := r.LeaveRepository.FetchOverlapping(ctx, w.start, w.end, employeeIDs)
	if err != nil {
		return report.Rows{}, nil, fmt.Errorf("failed to fetch leave records: %w", err)
	}

	// First record wins per (employee, day); upstream uniqueness makes
	// collisions impossible in practice.
	recordIndex := make(map[string]attendance.Attendance)
	for _, record := range records {
		key := record.EmployeeID + "|" + timeutil.Day(record.Date).Format(timeutil.DateLayout)
		if _, ok := recordIndex[key]; !ok {
			recordIndex[key] = record
		}
	}

	var rows []report.AttendanceRow
	var presentDays, onLeaveDays, absentDays, lateDays int
	var totalHours float64
	var hoursSamples int

	for day := range timeutil.DateRange(w.start, w.end) {
		date := day.Format(timeutil.DateLayout)

		for _, emp := range employees {
			row := report.AttendanceRow{
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName(),
				Date:         date,
			}

			if record, ok := recordIndex[emp.ID+"|"+date]; ok {
				// Presence beats leave: a clock-in on a leave day is a
				// worked day.
				row.Status = report.StatusPresent
				clockIn := record.ClockIn.Format(timeutil.ClockLayout)
				row.ClockIn = &clockIn
				if record.ClockOut != nil {
					clockOut := record.ClockOut.Format(timeutil.ClockLayout)
					row.ClockOut = &clockOut
				}
				if d := timeutil.TimeInBuilding(record.ClockIn, record.ClockOut); d != nil {
					hours := d.Hours()
					row.HoursWorked = &hours
					totalHours += hours
					hoursSamples++
				}
				if state, ok := states[record.ID]; ok {
					row.IsLate = state.IsLate
				}
				presentDays++
				if row.IsLate {
					lateDays++
				}
			} else if l, ok := acceptedLeaveFor(leaves, emp.ID, day); ok {
				row.Status = report.StatusOnLeave
				row.Reason = l.Comment
				onLeaveDays++
			} else {
				row.Status = report.StatusAbsent
				absentDays++
			}

			rows = append(rows, row)
		}
	}

	averageHours := 0.0
	if hoursSamples > 0 {
		averageHours = totalHours / float64(hoursSamples)
	}

	summary := map[string]any{
		"total_days":    len(rows),
		"present_days":  presentDays,
		"on_leave_days": onLeaveDays,
		"absent_days":   absentDays,
		"late_days":     lateDays,
		"average_hours": averageHours,
	}

	return report.Rows{Attendance: rows}, summary, nil
}

// acceptedLeaveFor returns the first accepted leave of the employee
// spanning the given day.
func acceptedLeaveFor(leaves []leave.Leave, employeeID string, day time.Time) (leave.Leave, bool) {
	for _, l := range leaves {
		if l.EmployeeID == employeeID && l.Accepted() && l.Spans(day) {
			return l, true
		}
	}
	return leave.Leave{}, false
}

func (r *ReportServiceImpl) buildVisits(ctx context.Context, req report.ReportRequest, w window) (report.Rows, map[string]any, error) {
	filter := visit.HostFilter{Kind: req.Category, HostID: req.CategoryID}

	visits, err := r.VisitRepository.FetchRange(ctx, w.start, w.end, filter)
	if err != nil {
		return report.Rows{}, nil, fmt.Errorf("failed to fetch visits: %w", err)
	}

	rows := make([]report.VisitRow, 0, len(visits))
	var completed, pending, cancelled int

	for _, v := range visits {
		row := report.VisitRow{
			VisitorName: v.VisitorName(),
			Date:        v.Date.Format(timeutil.DateLayout),
			Reason:      v.Reason,
			Status:      v.Status,
		}
		if v.CheckInAt != nil {
			checkIn := v.CheckInAt.Format(timeutil.ClockLayout)
			row.CheckIn = &checkIn
		}
		if v.CheckOutAt != nil {
			checkOut := v.CheckOutAt.Format(timeutil.ClockLayout)
			row.CheckOut = &checkOut
		}
		rows = append(rows, row)

		switch v.Status {
		case visit.StatusCompleted:
			completed++
		case visit.StatusCancelled:
			cancelled++
		default:
			pending++
		}
	}

	summary := map[string]any{
		"total_visits":     len(rows),
		"completed_visits": completed,
		"pending_visits":   pending,
		"cancelled_visits": cancelled,
	}

	return report.Rows{Visits: rows}, summary, nil
}

func (r *ReportServiceImpl) buildLeaves(ctx context.Context, req report.ReportRequest, w window) (report.Rows, map[string]any, error) {
	employees, err := r.EmployeeRepository.ResolveEmployeeSet(ctx, req.Category, req.CategoryID)
	if err != nil {
		return report.Rows{}, nil, err
	}

	employeeIDs := make([]string, 0, len(employees))
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		employeeIDs = append(employeeIDs, e.ID)
		names[e.ID] = e.FullName()
	}

	leaves, err := r.LeaveRepository.FetchOverlapping(ctx, w.start, w.end, employeeIDs)
	if err != nil {
		return report.Rows{}, nil, fmt.Errorf("failed to fetch leave records: %w", err)
	}

	rows := make([]report.LeaveRow, 0, len(leaves))
	totalDays := 0

	for _, l := range leaves {
		name := names[l.EmployeeID]
		if name == "" {
			name = leaveEmployeeName(l)
		}
		duration := l.DurationDays()
		totalDays += duration

		rows = append(rows, report.LeaveRow{
			EmployeeID:   l.EmployeeID,
			EmployeeName: name,
			StartDate:    l.StartDate.Format(timeutil.DateLayout),
			EndDate:      l.EndDate.Format(timeutil.DateLayout),
			DurationDays: duration,
			Reason:       l.Comment,
		})
	}

	summary := map[string]any{
		"total_requests": len(rows),
		"total_days":     totalDays,
	}

	return report.Rows{Leaves: rows}, summary, nil
}

func leaveEmployeeName(l leave.Leave) string {
	first, last := "", ""
	if l.EmployeeFirstname != nil {
		first = *l.EmployeeFirstname
	}
	if l.EmployeeLastname != nil {
		last = *l.EmployeeLastname
	}
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
	visitRepo visit.VisitRepository,
) report.ReportService {
	svc := &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		LeaveRepository:      leaveRepo,
		VisitRepository:      visitRepo,
	}
	svc.builders = map[report.ReportType]rowBuilder{
		report.TypeAttendance: svc.buildAttendance,
		report.TypeVisits:     svc.buildVisits,
		report.TypeLeaves:     svc.buildLeaves,
	}
	return svc
}
