package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrPolicyNotFound  = errors.New("company has no attendance policy configured")
)
