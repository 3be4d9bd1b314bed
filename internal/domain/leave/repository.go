package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access for leave applications, scoped
// by company on every method.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string, companyID string) (LeaveRequest, error)

	// UpdateDecision persists the one-shot pending -> approved/rejected move
	UpdateDecision(ctx context.Context, req LeaveRequest) error

	// ListByEmployee retrieves an employee's applications, newest first
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]LeaveRequest, error)

	// ListByCompany retrieves every application of a company, newest first
	ListByCompany(ctx context.Context, companyID string) ([]LeaveRequest, error)

	// SumApprovedDaysByType sums TotalDays of approved requests per leave
	// type whose start date falls inside year
	SumApprovedDaysByType(ctx context.Context, employeeID string, year int, companyID string) (map[LeaveType]int, error)

	// ApprovedLeaveForDay reports whether an approved request covers date
	ApprovedLeaveForDay(ctx context.Context, employeeID string, date time.Time, companyID string) (bool, error)
}
