package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrStateNotFound      = errors.New("attendance state not found")

	// ErrDuplicateState guards the write-once contract on attendance_state:
	// a retried classification must fail, never overwrite.
	ErrDuplicateState = errors.New("attendance record has already been classified")
)
