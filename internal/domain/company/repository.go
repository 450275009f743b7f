package company

import "context"

// CompanyRepository exposes the one company attribute the engine surfaces:
// its display name.
type CompanyRepository interface {
	GetName(ctx context.Context, id string) (string, error)
}

// PolicyRepository resolves attendance policies. The employee -> company
// hop is the repository's concern; callers only hold an employee id.
type PolicyRepository interface {
	GetPolicyByEmployeeID(ctx context.Context, employeeID string) (Policy, error)
}
