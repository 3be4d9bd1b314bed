package leave

import (
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	FromDate  string `json:"from_date"` // YYYY-MM-DD
	ToDate    string `json:"to_date"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, ValidLeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of PAID, SICK, UNPAID",
		})
	}

	if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be YYYY-MM-DD",
		})
	}

	if _, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecideLeaveRequest is the admin approval/rejection payload. The comment is
// optional on approve and mandatory on reject.
type DecideLeaveRequest struct {
	ID           string  `json:"-"`
	AdminComment *string `json:"admin_comment,omitempty"`
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	FromDate     string  `json:"from_date"`
	ToDate       string  `json:"to_date"`
	TotalDays    int     `json:"total_days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AdminComment *string `json:"admin_comment,omitempty"`
	AppliedAt    string  `json:"applied_at"`
}

// TypeBalance is the yearly accounting for one leave type.
type TypeBalance struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

type BalanceResponse struct {
	Year   int         `json:"year"`
	Paid   TypeBalance `json:"paid"`
	Sick   TypeBalance `json:"sick"`
	Unpaid TypeBalance `json:"unpaid"`
}
