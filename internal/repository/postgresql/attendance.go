package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/attendance"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	a.id, a.employee_id, a.clock_in_time, a.clock_out_time, a.attendance_date,
	e.firstname, e.lastname
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.ClockIn, &att.ClockOut, &att.Date,
		&att.EmployeeFirstname, &att.EmployeeLastname,
	)
	return att, err
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// FetchRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) FetchRange(ctx context.Context, start, end time.Time, employeeIDs []string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.attendance_date BETWEEN $1 AND $2
	`
	args := []any{start, end}

	if employeeIDs != nil {
		query += ` AND a.employee_id = ANY($3)`
		args = append(args, employeeIDs)
	}
	query += ` ORDER BY a.attendance_date, a.clock_in_time`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance range: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// FetchForDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) FetchForDay(ctx context.Context, day time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.attendance_date = $1
		ORDER BY a.clock_in_time
	`

	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance for day: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func collectAttendance(rows pgx.Rows) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		out = append(out, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}
	return out, nil
}

// CountSince implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	q := GetQuerier(ctx, a.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE clock_in_time >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	return count, nil
}

// CreateState implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreateState(ctx context.Context, state attendance.State) (attendance.State, error) {
	query := `
		INSERT INTO attendance_state (id, attendance_id, is_late)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query, state.ID, state.AttendanceID, state.IsLate).Scan(&state.ID)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: the attendance_id unique constraint; the first verdict
		// stays untouched.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.State{}, attendance.ErrDuplicateState
		}
		return attendance.State{}, fmt.Errorf("failed to create attendance state: %w", err)
	}

	return state, nil
}

// GetStateByAttendanceID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetStateByAttendanceID(ctx context.Context, attendanceID string) (attendance.State, error) {
	q := GetQuerier(ctx, a.db)

	var state attendance.State
	err := q.QueryRow(ctx,
		`SELECT id, attendance_id, is_late FROM attendance_state WHERE attendance_id = $1`,
		attendanceID,
	).Scan(&state.ID, &state.AttendanceID, &state.IsLate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.State{}, attendance.ErrStateNotFound
		}
		return attendance.State{}, fmt.Errorf("failed to get attendance state: %w", err)
	}

	return state, nil
}

// FetchStates implements attendance.AttendanceRepository.
func (a *attendanceRepository) FetchStates(ctx context.Context, attendanceIDs []string) (map[string]attendance.State, error) {
	states := make(map[string]attendance.State)
	if len(attendanceIDs) == 0 {
		return states, nil
	}

	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx,
		`SELECT id, attendance_id, is_late FROM attendance_state WHERE attendance_id = ANY($1)`,
		attendanceIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance states: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var state attendance.State
		if err := rows.Scan(&state.ID, &state.AttendanceID, &state.IsLate); err != nil {
			return nil, fmt.Errorf("failed to scan attendance state: %w", err)
		}
		states[state.AttendanceID] = state
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance states: %w", err)
	}

	return states, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
