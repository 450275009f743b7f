package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/company"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type companyRepository struct {
	db *database.DB
}

// GetName implements company.CompanyRepository.
func (c *companyRepository) GetName(ctx context.Context, id string) (string, error) {
	q := GetQuerier(ctx, c.db)

	var name string
	err := q.QueryRow(ctx, `SELECT name FROM companies WHERE id = $1`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", company.ErrCompanyNotFound
		}
		return "", fmt.Errorf("failed to get company name: %w", err)
	}

	return name, nil
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

type policyRepository struct {
	db *database.DB
}

// GetPolicyByEmployeeID implements company.PolicyRepository.
func (p *policyRepository) GetPolicyByEmployeeID(ctx context.Context, employeeID string) (company.Policy, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT s.id, s.company_id, s.start_work_time::text, s.end_work_time::text, s.max_late_time
		FROM company_settings s
		JOIN employees e ON e.company_id = s.company_id
		WHERE e.id = $1
	`

	var policy company.Policy
	var maxLate pgtype.Interval
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&policy.ID, &policy.CompanyID, &policy.StartWorkTime, &policy.EndWorkTime, &maxLate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Policy{}, company.ErrPolicyNotFound
		}
		return company.Policy{}, fmt.Errorf("failed to get attendance policy: %w", err)
	}

	policy.MaxLateTime = intervalToDuration(maxLate)

	return policy, nil
}

// intervalToDuration flattens a postgres interval. Month components are
// meaningless for a grace period and are ignored.
func intervalToDuration(iv pgtype.Interval) time.Duration {
	return time.Duration(iv.Microseconds)*time.Microsecond +
		time.Duration(iv.Days)*24*time.Hour
}

func NewPolicyRepository(db *database.DB) company.PolicyRepository {
	return &policyRepository{db: db}
}
