package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the engine's read gateway onto attendance data
// plus the single write it performs: the attendance_state insert.
type AttendanceRepository interface {
	// GetByID retrieves one attendance record.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// FetchRange retrieves records whose date falls in [start, end]. A nil
	// employeeIDs fetches for all employees; an empty non-nil slice fetches
	// nothing.
	FetchRange(ctx context.Context, start, end time.Time, employeeIDs []string) ([]Attendance, error)

	// FetchForDay retrieves records whose clock-in falls on the given day,
	// joined with employee names.
	FetchForDay(ctx context.Context, day time.Time) ([]Attendance, error)

	// CountSince counts records clocked in at or after the given instant.
	CountSince(ctx context.Context, since time.Time) (int, error)

	// CreateState inserts the derived lateness row. attendance_id is
	// unique; a second insert for the same record fails with
	// ErrDuplicateState and leaves the first row untouched.
	CreateState(ctx context.Context, state State) (State, error)

	// GetStateByAttendanceID retrieves the lateness verdict for a record,
	// or ErrStateNotFound when classification never ran.
	GetStateByAttendanceID(ctx context.Context, attendanceID string) (State, error)

	// FetchStates retrieves the verdicts for a batch of attendance ids.
	// Unclassified ids are simply absent from the result.
	FetchStates(ctx context.Context, attendanceIDs []string) (map[string]State, error)
}
