package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/visit"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/database"
)

type visitRepository struct {
	db *database.DB
}

// FetchRange implements visit.VisitRepository.
func (r *visitRepository) FetchRange(ctx context.Context, start, end time.Time, filter visit.HostFilter) ([]visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	// filter.Column returns one of three fixed identifiers; no user input
	// reaches the query text.
	query := `
		SELECT v.id, v.visitor_id, v.host_employee, v.host_department, v.host_service,
			   v.visit_date, v.check_in_at, v.check_out_at, v.reason, v.status,
			   v.vehicle_id, v.reg_no,
			   vis.firstname, vis.lastname
		FROM visits v
		JOIN visitors vis ON vis.id = v.visitor_id
		WHERE v.visit_date BETWEEN $1 AND $2
		  AND v.` + filter.Column() + ` = $3
		ORDER BY v.visit_date, v.check_in_at
	`

	rows, err := q.Query(ctx, query, start, end, filter.HostID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visits: %w", err)
	}
	defer rows.Close()

	var visits []visit.Visit
	for rows.Next() {
		var v visit.Visit
		err := rows.Scan(
			&v.ID, &v.VisitorID, &v.HostEmployee, &v.HostDepartment, &v.HostService,
			&v.Date, &v.CheckInAt, &v.CheckOutAt, &v.Reason, &v.Status,
			&v.VehicleID, &v.RegNo,
			&v.VisitorFirstname, &v.VisitorLastname,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit row: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read visit rows: %w", err)
	}

	return visits, nil
}

func NewVisitRepository(db *database.DB) visit.VisitRepository {
	return &visitRepository{db: db}
}
