package leave

import "context"

// LeaveService defines business logic for the leave workflow
type LeaveService interface {
	// Apply files a new request for the authenticated employee
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveRequestResponse, error)

	// Approve decides a pending request positively (admin)
	Approve(ctx context.Context, req DecideLeaveRequest) (LeaveRequestResponse, error)

	// Reject decides a pending request negatively; the comment is mandatory
	Reject(ctx context.Context, req DecideLeaveRequest) (LeaveRequestResponse, error)

	// Balance reports per-type used/remaining days for one year
	Balance(ctx context.Context, year int) (BalanceResponse, error)

	// GetMyRequests lists the authenticated employee's applications
	GetMyRequests(ctx context.Context) ([]LeaveRequestResponse, error)

	// ListRequests lists every application of the company (admin)
	ListRequests(ctx context.Context) ([]LeaveRequestResponse, error)
}
