package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/employee"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

const employeeColumns = `
	id, firstname, lastname, phone_number, email, password, function,
	company_id, agency_id, department_id, service_id, position_id,
	supervisor_id, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Firstname, &emp.Lastname, &emp.PhoneNumber, &emp.Email,
		&emp.Password, &emp.Function, &emp.CompanyID, &emp.AgencyID,
		&emp.DepartmentID, &emp.ServiceID, &emp.PositionID, &emp.SupervisorID,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// GetByPhoneNumber implements employee.EmployeeRepository.
func (e *employeeRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE phone_number = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, phoneNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by phone number: %w", err)
	}

	return emp, nil
}

// ResolveEmployeeSet implements employee.EmployeeRepository.
func (e *employeeRepository) ResolveEmployeeSet(ctx context.Context, category employee.Category, categoryID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	var predicate string
	switch category {
	case employee.CategoryEmployee:
		predicate = `id = $1`
	case employee.CategoryDepartment:
		predicate = `department_id = $1`
	case employee.CategoryService:
		predicate = `service_id = $1`
	default:
		return nil, employee.ErrCategoryNotResolved
	}

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE ` + predicate + ` ORDER BY lastname, firstname`

	rows, err := q.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve employee set: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	if len(employees) == 0 {
		return nil, employee.ErrCategoryNotResolved
	}

	return employees, nil
}

// CountAll implements employee.EmployeeRepository.
func (e *employeeRepository) CountAll(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, e.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
