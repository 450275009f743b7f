package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/leave"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

// FetchOverlapping implements leave.LeaveRepository.
func (l *leaveRepository) FetchOverlapping(ctx context.Context, start, end time.Time, employeeIDs []string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lv.id, lv.employee_id, lv.start_date, lv.end_date, lv.comment, lv.status,
			   e.firstname, e.lastname
		FROM leaves lv
		JOIN employees e ON e.id = lv.employee_id
		WHERE lv.start_date <= $2 AND lv.end_date >= $1
	`
	args := []any{start, end}

	if employeeIDs != nil {
		query += ` AND lv.employee_id = ANY($3)`
		args = append(args, employeeIDs)
	}
	query += ` ORDER BY lv.start_date`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overlapping leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var lv leave.Leave
		err := rows.Scan(
			&lv.ID, &lv.EmployeeID, &lv.StartDate, &lv.EndDate, &lv.Comment, &lv.Status,
			&lv.EmployeeFirstname, &lv.EmployeeLastname,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave row: %w", err)
		}
		leaves = append(leaves, lv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave rows: %w", err)
	}

	return leaves, nil
}

// CountAccepted implements leave.LeaveRepository.
func (l *leaveRepository) CountAccepted(ctx context.Context, day time.Time) (int, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT COUNT(DISTINCT employee_id)
		FROM leaves
		WHERE status = $1 AND start_date <= $2 AND end_date >= $2
	`

	var count int
	if err := q.QueryRow(ctx, query, leave.StatusAccepted, day).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accepted leaves: %w", err)
	}

	return count, nil
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}
