package report

import (
	"context"
	"testing"
	"time"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/attendance"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/employee"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/leave"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/report"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/visit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	states  map[string]attendance.State
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) FetchRange(_ context.Context, start, end time.Time, employeeIDs []string) ([]attendance.Attendance, error) {
	ids := make(map[string]bool)
	for _, id := range employeeIDs {
		ids[id] = true
	}
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		if employeeIDs != nil && !ids[r.EmployeeID] {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) FetchForDay(_ context.Context, _ time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) CountSince(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

func (f *fakeAttendanceRepo) CreateState(_ context.Context, state attendance.State) (attendance.State, error) {
	return state, nil
}

func (f *fakeAttendanceRepo) GetStateByAttendanceID(_ context.Context, _ string) (attendance.State, error) {
	return attendance.State{}, attendance.ErrStateNotFound
}

func (f *fakeAttendanceRepo) FetchStates(_ context.Context, attendanceIDs []string) (map[string]attendance.State, error) {
	out := make(map[string]attendance.State)
	for _, id := range attendanceIDs {
		if state, ok := f.states[id]; ok {
			out[id] = state
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByPhoneNumber(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ResolveEmployeeSet(_ context.Context, _ employee.Category, _ string) ([]employee.Employee, error) {
	if len(f.employees) == 0 {
		return nil, employee.ErrCategoryNotResolved
	}
	return f.employees, nil
}

func (f *fakeEmployeeRepo) CountAll(_ context.Context) (int, error) {
	return len(f.employees), nil
}

type fakeLeaveRepo struct {
	leaves []leave.Leave
}

func (f *fakeLeaveRepo) FetchOverlapping(_ context.Context, start, end time.Time, _ []string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range f.leaves {
		if !l.StartDate.After(end) && !l.EndDate.Before(start) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) CountAccepted(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

type fakeVisitRepo struct {
	visits []visit.Visit
}

func (f *fakeVisitRepo) FetchRange(_ context.Context, start, end time.Time, filter visit.HostFilter) ([]visit.Visit, error) {
	var out []visit.Visit
	for _, v := range f.visits {
		if v.Date.Before(start) || v.Date.After(end) {
			continue
		}
		if !filter.Matches(v) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func newService(att *fakeAttendanceRepo, emp *fakeEmployeeRepo, lv *fakeLeaveRepo, vs *fakeVisitRepo) report.ReportService {
	if att.states == nil {
		att.states = map[string]attendance.State{}
	}
	return NewReportService(att, emp, lv, vs)
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestReportService_Generate_Attendance(t *testing.T) {
	ctx := context.Background()

	day2 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	clockOut := day2.Add(17 * time.Hour)

	att := &fakeAttendanceRepo{
		records: []attendance.Attendance{{
			ID:         "att-1",
			EmployeeID: "emp-1",
			ClockIn:    day2.Add(9 * time.Hour),
			ClockOut:   &clockOut,
			Date:       day2,
		}},
		states: map[string]attendance.State{
			"att-1": {ID: "s-1", AttendanceID: "att-1", IsLate: true},
		},
	}
	emp := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Firstname: "Ada", Lastname: "Lovelace"},
	}}

	svc := newService(att, emp, &fakeLeaveRepo{}, &fakeVisitRepo{})

	result, err := svc.Generate(ctx, report.ReportRequest{
		Type:       report.TypeAttendance,
		Category:   employee.CategoryEmployee,
		CategoryID: "emp-1",
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-06",
	})
	require.NoError(t, err)

	rows := result.Rows.Attendance
	require.Len(t, rows, 3, "one row per employee per day of the window")

	assert.Equal(t, report.StatusAbsent, rows[0].Status)
	assert.Equal(t, report.StatusPresent, rows[1].Status)
	assert.Equal(t, report.StatusAbsent, rows[2].Status)

	present := rows[1]
	assert.Equal(t, "Ada Lovelace", present.EmployeeName)
	require.NotNil(t, present.ClockIn)
	assert.Equal(t, "09:00:00", *present.ClockIn)
	assert.True(t, present.IsLate)
	require.NotNil(t, present.HoursWorked)
	assert.InDelta(t, 8.0, *present.HoursWorked, 1e-9)

	assert.Equal(t, 3, result.Summary["total_days"])
	assert.Equal(t, 1, result.Summary["present_days"])
	assert.Equal(t, 2, result.Summary["absent_days"])
	assert.Equal(t, 0, result.Summary["on_leave_days"])
	assert.Equal(t, 1, result.Summary["late_days"])
	assert.InDelta(t, 8.0, result.Summary["average_hours"].(float64), 1e-9)
}

func TestReportService_Generate_PresenceBeatsLeave(t *testing.T) {
	ctx := context.Background()

	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	att := &fakeAttendanceRepo{
		records: []attendance.Attendance{{
			ID:         "att-1",
			EmployeeID: "emp-1",
			ClockIn:    day.Add(9 * time.Hour),
			Date:       day,
		}},
	}
	emp := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Firstname: "Ada", Lastname: "Lovelace"},
	}}
	lv := &fakeLeaveRepo{leaves: []leave.Leave{{
		ID:         "leave-1",
		EmployeeID: "emp-1",
		StartDate:  day.AddDate(0, 0, -1),
		EndDate:    day.AddDate(0, 0, 1),
		Status:     leave.StatusAccepted,
		Comment:    strPtr("vacation"),
	}}}

	svc := newService(att, emp, lv, &fakeVisitRepo{})

	result, err := svc.Generate(ctx, report.ReportRequest{
		Type:       report.TypeAttendance,
		Category:   employee.CategoryEmployee,
		CategoryID: "emp-1",
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-06",
	})
	require.NoError(t, err)

	rows := result.Rows.Attendance
	require.Len(t, rows, 3)

	assert.Equal(t, report.StatusOnLeave, rows[0].Status)
	assert.Equal(t, report.StatusPresent, rows[1].Status, "a clock-in on a leave day is a worked day")
	assert.Equal(t, report.StatusOnLeave, rows[2].Status)

	require.NotNil(t, rows[0].Reason)
	assert.Equal(t, "vacation", *rows[0].Reason)
}

func TestReportService_Generate_Visits(t *testing.T) {
	ctx := context.Background()

	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	vs := &fakeVisitRepo{visits: []visit.Visit{
		{
			ID:               "visit-1",
			VisitorID:        "visitor-1",
			HostDepartment:   strPtr("dept-1"),
			Date:             day,
			CheckInAt:        timePtr(day.Add(10 * time.Hour)),
			CheckOutAt:       timePtr(day.Add(11 * time.Hour)),
			Reason:           strPtr("interview"),
			Status:           visit.StatusCompleted,
			VisitorFirstname: strPtr("Grace"),
			VisitorLastname:  strPtr("Hopper"),
		},
		{
			ID:             "visit-2",
			VisitorID:      "visitor-2",
			HostDepartment: strPtr("dept-1"),
			Date:           day,
			Status:         visit.StatusPending,
		},
		{
			// Different host, must be filtered out.
			ID:             "visit-3",
			VisitorID:      "visitor-3",
			HostDepartment: strPtr("dept-2"),
			Date:           day,
			Status:         visit.StatusCancelled,
		},
	}}

	svc := newService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeLeaveRepo{}, vs)

	result, err := svc.Generate(ctx, report.ReportRequest{
		Type:       report.TypeVisits,
		Category:   employee.CategoryDepartment,
		CategoryID: "dept-1",
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-06",
	})
	require.NoError(t, err)

	rows := result.Rows.Visits
	require.Len(t, rows, 2)

	assert.Equal(t, "Grace Hopper", rows[0].VisitorName)
	require.NotNil(t, rows[0].CheckIn)
	assert.Equal(t, "10:00:00", *rows[0].CheckIn)
	assert.Nil(t, rows[1].CheckIn)

	assert.Equal(t, 2, result.Summary["total_visits"])
	assert.Equal(t, 1, result.Summary["completed_visits"])
	assert.Equal(t, 1, result.Summary["pending_visits"])
	assert.Equal(t, 0, result.Summary["cancelled_visits"])
}

func TestReportService_Generate_Leaves(t *testing.T) {
	ctx := context.Background()

	emp := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Firstname: "Ada", Lastname: "Lovelace"},
	}}
	lv := &fakeLeaveRepo{leaves: []leave.Leave{{
		ID:         "leave-1",
		EmployeeID: "emp-1",
		StartDate:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusAccepted,
		Comment:    strPtr("vacation"),
	}}}

	svc := newService(&fakeAttendanceRepo{}, emp, lv, &fakeVisitRepo{})

	result, err := svc.Generate(ctx, report.ReportRequest{
		Type:       report.TypeLeaves,
		Category:   employee.CategoryEmployee,
		CategoryID: "emp-1",
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-31",
	})
	require.NoError(t, err)

	rows := result.Rows.Leaves
	require.Len(t, rows, 1)
	assert.Equal(t, "Ada Lovelace", rows[0].EmployeeName)
	assert.Equal(t, 3, rows[0].DurationDays)

	assert.Equal(t, 1, result.Summary["total_requests"])
	assert.Equal(t, 3, result.Summary["total_days"])
}

func TestReportService_Generate_DefaultWindow(t *testing.T) {
	ctx := context.Background()

	svc := newService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Firstname: "Ada", Lastname: "Lovelace"},
	}}, &fakeLeaveRepo{}, &fakeVisitRepo{})

	result, err := svc.Generate(ctx, report.ReportRequest{
		Type:       report.TypeAttendance,
		Category:   employee.CategoryEmployee,
		CategoryID: "emp-1",
	})
	require.NoError(t, err)

	start, err := time.Parse("2006-01-02", result.StartDate)
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02", result.EndDate)
	require.NoError(t, err)

	assert.Equal(t, float64(report.DefaultWindowDays), end.Sub(start).Hours()/24)
	require.Len(t, result.Rows.Attendance, report.DefaultWindowDays+1)
}

func TestReportService_Generate_ReversedWindow(t *testing.T) {
	ctx := context.Background()
	svc := newService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeLeaveRepo{}, &fakeVisitRepo{})

	_, err := svc.Generate(ctx, report.ReportRequest{
		Type:       report.TypeVisits,
		Category:   employee.CategoryEmployee,
		CategoryID: "emp-1",
		StartDate:  "2024-03-10",
		EndDate:    "2024-03-04",
	})
	require.ErrorIs(t, err, report.ErrInvalidDateRange)
}

func TestReportService_Generate_UnresolvedCategory(t *testing.T) {
	ctx := context.Background()
	svc := newService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeLeaveRepo{}, &fakeVisitRepo{})

	_, err := svc.Generate(ctx, report.ReportRequest{
		Type:       report.TypeAttendance,
		Category:   employee.CategoryEmployee,
		CategoryID: "missing",
	})
	require.ErrorIs(t, err, employee.ErrCategoryNotResolved)
}

func TestReportService_Generate_InvalidRequest(t *testing.T) {
	ctx := context.Background()
	svc := newService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeLeaveRepo{}, &fakeVisitRepo{})

	_, err := svc.Generate(ctx, report.ReportRequest{
		Type:       "PAYROLL",
		Category:   employee.CategoryEmployee,
		CategoryID: "emp-1",
	})
	require.Error(t, err)
}
