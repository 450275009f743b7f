package employee

import "context"

// EmployeeRepository defines data access for employees and for resolving a
// report category into a concrete employee set.
type EmployeeRepository interface {
	// GetByPhoneNumber retrieves an employee for login.
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (Employee, error)

	// ResolveEmployeeSet expands a category into the employees it names:
	// the employee itself, or every employee of the department/service.
	// An id that matches nothing fails with ErrCategoryNotResolved.
	ResolveEmployeeSet(ctx context.Context, category Category, categoryID string) ([]Employee, error)

	// CountAll returns the number of employees on record.
	CountAll(ctx context.Context) (int, error)
}
