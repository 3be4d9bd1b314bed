package employee

import "context"

// EmployeeService defines onboarding and directory operations
type EmployeeService interface {
	// Onboard creates a user account with generated credentials plus the
	// employee profile, and dispatches the credentials email best-effort
	Onboard(ctx context.Context, req OnboardEmployeeRequest) (OnboardEmployeeResponse, error)

	// List retrieves every employee of the caller's company
	List(ctx context.Context) ([]EmployeeResponse, error)

	// GetMe retrieves the employee profile of the authenticated user
	GetMe(ctx context.Context) (EmployeeResponse, error)
}
