package visit

import (
	"fmt"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/employee"
)

// HostFilter scopes a visit query to exactly one host column. The kind tag
// decides which column; never more than one predicate applies.
type HostFilter struct {
	Kind   employee.Category
	HostID string
}

// Column returns the visits column the filter's predicate binds to.
func (f HostFilter) Column() string {
	switch f.Kind {
	case employee.CategoryEmployee:
		return "host_employee"
	case employee.CategoryDepartment:
		return "host_department"
	case employee.CategoryService:
		return "host_service"
	}
	panic(fmt.Sprintf("visit: unknown host category %q", f.Kind))
}

// Matches applies the predicate in memory, mirroring the SQL column match.
func (f HostFilter) Matches(v Visit) bool {
	var host *string
	switch f.Kind {
	case employee.CategoryEmployee:
		host = v.HostEmployee
	case employee.CategoryDepartment:
		host = v.HostDepartment
	case employee.CategoryService:
		host = v.HostService
	default:
		panic(fmt.Sprintf("visit: unknown host category %q", f.Kind))
	}
	return host != nil && *host == f.HostID
}
