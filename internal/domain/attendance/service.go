package attendance

import "context"

// AttendanceService defines the engine-side attendance operations.
type AttendanceService interface {
	// ClassifyClockIn resolves the owning company's policy, decides
	// late/on-time and persists exactly one State for the event's
	// attendance record.
	ClassifyClockIn(ctx context.Context, event ClockInEvent) (StateResponse, error)

	// DailyAttendance lists attendance grouped per calendar day over an
	// inclusive window, each entry decorated with time-in-building.
	DailyAttendance(ctx context.Context, req DailyAttendanceRequest) ([]DayResponse, error)

	// AttendanceDetail retrieves one record joined with its lateness
	// verdict.
	AttendanceDetail(ctx context.Context, attendanceID string) (DetailResponse, error)
}
