package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrNameRequired    = errors.New("company name is required")
)
