package payroll

import "context"

type SalaryRepository interface {
	Upsert(ctx context.Context, record *SalaryRecord) error
	GetByEmployee(ctx context.Context, employeeID, companyID string) (*SalaryRecord, error)
}
