package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/attendance"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/company"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo is an in-memory AttendanceRepository keyed the same
// way the real table is: states unique per attendance id.
type fakeAttendanceRepo struct {
	records []attendance.Attendance
	states  map[string]attendance.State
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{states: make(map[string]attendance.State)}
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) FetchRange(_ context.Context, start, end time.Time, employeeIDs []string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		if employeeIDs != nil && !contains(employeeIDs, r.EmployeeID) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) FetchForDay(_ context.Context, day time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.Date.Equal(day) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CountSince(_ context.Context, since time.Time) (int, error) {
	count := 0
	for _, r := range f.records {
		if !r.ClockIn.Before(since) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttendanceRepo) CreateState(_ context.Context, state attendance.State) (attendance.State, error) {
	if _, ok := f.states[state.AttendanceID]; ok {
		return attendance.State{}, attendance.ErrDuplicateState
	}
	f.states[state.AttendanceID] = state
	return state, nil
}

func (f *fakeAttendanceRepo) GetStateByAttendanceID(_ context.Context, attendanceID string) (attendance.State, error) {
	state, ok := f.states[attendanceID]
	if !ok {
		return attendance.State{}, attendance.ErrStateNotFound
	}
	return state, nil
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

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type fakeSink struct {
	payloads []notification.Payload
}

func (f *fakeSink) Notify(_ context.Context, payload notification.Payload) error {
	f.payloads = append(f.payloads, payload)
	return nil
}

type fakePolicyRepo struct {
	policy company.Policy
	err    error
}

func (f *fakePolicyRepo) GetPolicyByEmployeeID(_ context.Context, _ string) (company.Policy, error) {
	if f.err != nil {
		return company.Policy{}, f.err
	}
	return f.policy, nil
}

func defaultPolicy() company.Policy {
	return company.Policy{
		ID:            "policy-1",
		CompanyID:     "company-1",
		StartWorkTime: "09:00:00",
		EndWorkTime:   "17:00:00",
		MaxLateTime:   5 * time.Minute,
	}
}

func TestAttendanceService_ClassifyClockIn_OnTime(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, &fakePolicyRepo{policy: defaultPolicy()}, &fakeSink{})

	resp, err := svc.ClassifyClockIn(ctx, attendance.ClockInEvent{
		AttendanceID: "att-1",
		EmployeeID:   "emp-1",
		ClockInTime:  "2024-03-04T09:05:00Z",
	})
	require.NoError(t, err)

	assert.False(t, resp.IsLate, "clock-in at the grace boundary is on time")
	assert.Equal(t, "att-1", resp.AttendanceID)
	assert.NotEmpty(t, resp.StateID)
}

func TestAttendanceService_ClassifyClockIn_Late(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	sink := &fakeSink{}
	svc := NewAttendanceService(repo, &fakePolicyRepo{policy: defaultPolicy()}, sink)

	resp, err := svc.ClassifyClockIn(ctx, attendance.ClockInEvent{
		AttendanceID: "att-2",
		EmployeeID:   "emp-1",
		ClockInTime:  "2024-03-04T09:05:01Z",
	})
	require.NoError(t, err)

	assert.True(t, resp.IsLate)

	require.Len(t, sink.payloads, 1, "a late verdict emits a notification")
	assert.Equal(t, "emp-1", sink.payloads[0].ActorID)
	assert.Equal(t, "att-2", sink.payloads[0].ReferenceID)
	assert.Equal(t, notification.CategoryMessage, sink.payloads[0].Category)
}

func TestAttendanceService_ClassifyClockIn_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, &fakePolicyRepo{policy: defaultPolicy()}, &fakeSink{})

	event := attendance.ClockInEvent{
		AttendanceID: "att-3",
		EmployeeID:   "emp-1",
		ClockInTime:  "2024-03-04T10:00:00Z",
	}

	first, err := svc.ClassifyClockIn(ctx, event)
	require.NoError(t, err)

	_, err = svc.ClassifyClockIn(ctx, event)
	require.ErrorIs(t, err, attendance.ErrDuplicateState)

	// The original verdict must survive the failed retry untouched.
	state, err := repo.GetStateByAttendanceID(ctx, "att-3")
	require.NoError(t, err)
	assert.Equal(t, first.StateID, state.ID)
	assert.True(t, state.IsLate)
}

func TestAttendanceService_ClassifyClockIn_InvalidPayload(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendanceService(newFakeAttendanceRepo(), &fakePolicyRepo{policy: defaultPolicy()}, &fakeSink{})

	_, err := svc.ClassifyClockIn(ctx, attendance.ClockInEvent{
		AttendanceID: "att-4",
		EmployeeID:   "emp-1",
		ClockInTime:  "not-a-timestamp",
	})
	require.Error(t, err)
}

func TestAttendanceService_DailyAttendance_GroupsByDay(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()

	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	clockOut := time.Date(2024, 3, 5, 17, 30, 0, 0, time.UTC)
	first := "Ada"
	last := "Lovelace"
	repo.records = append(repo.records, attendance.Attendance{
		ID:                "att-1",
		EmployeeID:        "emp-1",
		ClockIn:           time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		ClockOut:          &clockOut,
		Date:              day,
		EmployeeFirstname: &first,
		EmployeeLastname:  &last,
	})

	svc := NewAttendanceService(repo, &fakePolicyRepo{policy: defaultPolicy()}, &fakeSink{})

	resp, err := svc.DailyAttendance(ctx, attendance.DailyAttendanceRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-06",
	})
	require.NoError(t, err)
	require.Len(t, resp, 3, "every day of the window gets a group, populated or not")

	assert.Equal(t, "2024-03-04", resp[0].Date)
	assert.Empty(t, resp[0].Entries)

	require.Len(t, resp[1].Entries, 1)
	entry := resp[1].Entries[0]
	assert.Equal(t, "Ada Lovelace", entry.EmployeeName)
	assert.Equal(t, "09:00:00", entry.ClockIn)
	require.NotNil(t, entry.ClockOut)
	assert.Equal(t, "17:30:00", *entry.ClockOut)
	require.NotNil(t, entry.TimeInBuilding)
	assert.InDelta(t, 8.5, *entry.TimeInBuilding, 1e-9)

	assert.Empty(t, resp[2].Entries)
}

func TestAttendanceService_DailyAttendance_FallbackCheckout(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()

	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	// Clock-out wall clock earlier than clock-in: shift crossed midnight
	// or the badge-out was missed.
	clockOut := time.Date(2024, 3, 6, 1, 0, 0, 0, time.UTC)
	repo.records = append(repo.records, attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		ClockIn:    time.Date(2024, 3, 5, 22, 0, 0, 0, time.UTC),
		ClockOut:   &clockOut,
		Date:       day,
	})

	svc := NewAttendanceService(repo, &fakePolicyRepo{policy: defaultPolicy()}, &fakeSink{})

	resp, err := svc.DailyAttendance(ctx, attendance.DailyAttendanceRequest{
		StartDate: "2024-03-05",
		EndDate:   "2024-03-05",
	})
	require.NoError(t, err)
	require.Len(t, resp, 1)
	require.Len(t, resp[0].Entries, 1)

	entry := resp[0].Entries[0]
	require.NotNil(t, entry.ClockOut)
	assert.Equal(t, "15:00:00", *entry.ClockOut)
	require.NotNil(t, entry.TimeInBuilding)
	assert.InDelta(t, -7.0, *entry.TimeInBuilding, 1e-9)
}

func TestAttendanceService_AttendanceDetail_Classified(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()

	clockOut := time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC)
	first := "Ada"
	last := "Lovelace"
	repo.records = append(repo.records, attendance.Attendance{
		ID:                "att-1",
		EmployeeID:        "emp-1",
		ClockIn:           time.Date(2024, 3, 5, 9, 10, 0, 0, time.UTC),
		ClockOut:          &clockOut,
		Date:              time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		EmployeeFirstname: &first,
		EmployeeLastname:  &last,
	})
	repo.states["att-1"] = attendance.State{ID: "state-1", AttendanceID: "att-1", IsLate: true}

	svc := NewAttendanceService(repo, &fakePolicyRepo{policy: defaultPolicy()}, &fakeSink{})

	detail, err := svc.AttendanceDetail(ctx, "att-1")
	require.NoError(t, err)

	assert.Equal(t, "att-1", detail.AttendanceID)
	assert.Equal(t, "Ada Lovelace", detail.EmployeeName)
	assert.Equal(t, "2024-03-05", detail.Date)
	assert.Equal(t, "09:10:00", detail.ClockIn)
	require.NotNil(t, detail.IsLate)
	assert.True(t, *detail.IsLate)
}

func TestAttendanceService_AttendanceDetail_Unclassified(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	repo.records = append(repo.records, attendance.Attendance{
		ID:         "att-2",
		EmployeeID: "emp-1",
		ClockIn:    time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		Date:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})

	svc := NewAttendanceService(repo, &fakePolicyRepo{policy: defaultPolicy()}, &fakeSink{})

	detail, err := svc.AttendanceDetail(ctx, "att-2")
	require.NoError(t, err)

	assert.Nil(t, detail.IsLate, "a record without a verdict carries no lateness flag")
	assert.Nil(t, detail.ClockOut)
}

func TestAttendanceService_AttendanceDetail_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendanceService(newFakeAttendanceRepo(), &fakePolicyRepo{policy: defaultPolicy()}, &fakeSink{})

	_, err := svc.AttendanceDetail(ctx, "missing")
	require.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_DailyAttendance_InvalidDates(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendanceService(newFakeAttendanceRepo(), &fakePolicyRepo{policy: defaultPolicy()}, &fakeSink{})

	_, err := svc.DailyAttendance(ctx, attendance.DailyAttendanceRequest{
		StartDate: "05-03-2024",
		EndDate:   "2024-03-06",
	})
	require.Error(t, err)
}
