package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/attendance"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/company"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/notification"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/timeutil"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	company.PolicyRepository
	sink notification.Sink
}

// ClassifyClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClassifyClockIn(ctx context.Context, event attendance.ClockInEvent) (attendance.StateResponse, error) {
	if err := event.Validate(); err != nil {
		return attendance.StateResponse{}, err
	}

	clockIn, err := time.Parse(time.RFC3339, event.ClockInTime)
	if err != nil {
		return attendance.StateResponse{}, fmt.Errorf("%w: %q", timeutil.ErrInvalidTimeFormat, event.ClockInTime)
	}

	policy, err := a.PolicyRepository.GetPolicyByEmployeeID(ctx, event.EmployeeID)
	if err != nil {
		return attendance.StateResponse{}, fmt.Errorf("failed to get attendance policy: %w", err)
	}

	isLate, err := timeutil.IsLateClock(
		clockIn.Format(timeutil.ClockLayout),
		policy.StartWorkTime,
		policy.MaxLateTime,
	)
	if err != nil {
		return attendance.StateResponse{}, fmt.Errorf("failed to classify clock-in: %w", err)
	}

	state, err := a.AttendanceRepository.CreateState(ctx, attendance.State{
		ID:           uuid.NewString(),
		AttendanceID: event.AttendanceID,
		IsLate:       isLate,
	})
	if err != nil {
		return attendance.StateResponse{}, err
	}

	if isLate {
		// Best effort; a failed notification never voids the verdict.
		_ = a.sink.Notify(ctx, notification.Payload{
			ActorID:     event.EmployeeID,
			Message:     "Late clock-in recorded",
			Category:    notification.CategoryMessage,
			ReferenceID: event.AttendanceID,
		})
	}

	return attendance.StateResponse{
		StateID:      state.ID,
		AttendanceID: state.AttendanceID,
		IsLate:       state.IsLate,
		ClassifiedAt: time.Now().UTC(),
	}, nil
}

// DailyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DailyAttendance(ctx context.Context, req attendance.DailyAttendanceRequest) ([]attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	days, err := timeutil.DateRangeStrings(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	var response []attendance.DayResponse
	for day := range days {
		records, err := a.AttendanceRepository.FetchForDay(ctx, day)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch attendance for %s: %w", day.Format(timeutil.DateLayout), err)
		}

		entries := make([]attendance.EntryResponse, 0, len(records))
		for _, record := range records {
			entries = append(entries, toEntryResponse(record))
		}

		response = append(response, attendance.DayResponse{
			Date:    day.Format(timeutil.DateLayout),
			Entries: entries,
		})
	}

	return response, nil
}

// AttendanceDetail implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) AttendanceDetail(ctx context.Context, attendanceID string) (attendance.DetailResponse, error) {
	record, err := a.AttendanceRepository.GetByID(ctx, attendanceID)
	if err != nil {
		return attendance.DetailResponse{}, err
	}

	entry := toEntryResponse(record)
	detail := attendance.DetailResponse{
		AttendanceID:   entry.AttendanceID,
		EmployeeID:     entry.EmployeeID,
		EmployeeName:   entry.EmployeeName,
		Date:           record.Date.Format(timeutil.DateLayout),
		ClockIn:        entry.ClockIn,
		ClockOut:       entry.ClockOut,
		TimeInBuilding: entry.TimeInBuilding,
	}

	state, err := a.AttendanceRepository.GetStateByAttendanceID(ctx, attendanceID)
	switch {
	case err == nil:
		detail.IsLate = &state.IsLate
	case errors.Is(err, attendance.ErrStateNotFound):
		// Unclassified records simply carry no verdict.
	default:
		return attendance.DetailResponse{}, fmt.Errorf("failed to get attendance state: %w", err)
	}

	return detail, nil
}

func toEntryResponse(record attendance.Attendance) attendance.EntryResponse {
	entry := attendance.EntryResponse{
		AttendanceID: record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: employeeName(record),
		ClockIn:      record.ClockIn.Format(timeutil.ClockLayout),
	}

	if record.ClockOut != nil {
		out := record.ClockOut.Format(timeutil.ClockLayout)
		// Someone who never clocked out is displayed as leaving at the
		// fallback checkout rather than with a negative stay.
		if beforeClock(*record.ClockOut, record.ClockIn) {
			out = "15:00:00"
		}
		entry.ClockOut = &out
	}

	if d := timeutil.TimeInBuilding(record.ClockIn, record.ClockOut); d != nil {
		hours := d.Hours()
		entry.TimeInBuilding = &hours
	}

	return entry
}

func employeeName(record attendance.Attendance) string {
	first, last := "", ""
	if record.EmployeeFirstname != nil {
		first = *record.EmployeeFirstname
	}
	if record.EmployeeLastname != nil {
		last = *record.EmployeeLastname
	}
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}

// beforeClock compares only the time-of-day of its arguments. HH:MM:SS
// strings order lexicographically.
func beforeClock(a, b time.Time) bool {
	return a.Format(timeutil.ClockLayout) < b.Format(timeutil.ClockLayout)
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	policyRepo company.PolicyRepository,
	sink notification.Sink,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		PolicyRepository:     policyRepo,
		sink:                 sink,
	}
}
