package employee

import "time"

type Employee struct {
	ID           string
	Firstname    string
	Lastname     string
	PhoneNumber  string
	Email        *string
	Password     string
	Function     string
	CompanyID    string
	AgencyID     *string
	DepartmentID *string
	ServiceID    *string
	PositionID   *string
	SupervisorID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns the display name used in report rows.
func (e Employee) FullName() string {
	return e.Firstname + " " + e.Lastname
}

// Category is the axis used to scope a report or visit to a host:
// a single employee, every employee of a department, or of a service.
type Category string

const (
	CategoryEmployee   Category = "EMPLOYEE"
	CategoryDepartment Category = "DEPARTMENT"
	CategoryService    Category = "SERVICE"
)

// Valid reports whether c is one of the three known category kinds.
func (c Category) Valid() bool {
	switch c {
	case CategoryEmployee, CategoryDepartment, CategoryService:
		return true
	}
	return false
}
