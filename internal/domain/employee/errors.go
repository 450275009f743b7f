package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrCategoryNotResolved = errors.New("category id does not resolve to any employee, department or service")
)
