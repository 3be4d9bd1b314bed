package employee

import "context"

// EmployeeRepository defines data access for employee profiles. Every lookup
// is scoped by companyID so one tenant can never read another tenant's rows.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	ListByCompany(ctx context.Context, companyID string) ([]Employee, error)
}
