package payroll

import "context"

type PayrollService interface {
	GetSalary(ctx context.Context, employeeID string) (*SalaryResponse, error)
	UpsertSalary(ctx context.Context, req *UpsertSalaryRequest) (*SalaryResponse, error)
	PayableDays(ctx context.Context, req *PayableDaysRequest) (*PayableDaysResponse, error)
}
