package payroll

import "errors"

var (
	ErrSalaryNotFound    = errors.New("salary record not found")
	ErrForbiddenEmployee = errors.New("you may only view your own salary")
	ErrNegativeAmount    = errors.New("salary amounts must not be negative")
)
