package leave

import "time"

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "PAID"
	LeaveTypeSick   LeaveType = "SICK"
	LeaveTypeUnpaid LeaveType = "UNPAID"
)

var ValidLeaveTypes = []string{
	string(LeaveTypePaid),
	string(LeaveTypeSick),
	string(LeaveTypeUnpaid),
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "PENDING"
	LeaveRequestStatusApproved LeaveRequestStatus = "APPROVED"
	LeaveRequestStatusRejected LeaveRequestStatus = "REJECTED"
)

// LeaveRequest is one application for a contiguous, inclusive date range.
// The pending status is decided exactly once; approved and rejected are
// terminal.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Type       LeaveType
	StartDate  time.Time
	EndDate    time.Time
	TotalDays  int
	Reason     string

	Status       LeaveRequestStatus
	AdminComment *string
	DecidedBy    *string
	DecidedAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	EmployeeName *string
}
