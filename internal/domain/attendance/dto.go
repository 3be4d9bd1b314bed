package attendance

import (
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  string   `json:"employee_name,omitempty"`
	Date          string   `json:"date"`
	CheckInTime   *string  `json:"check_in_time"`
	CheckOutTime  *string  `json:"check_out_time"`
	WorkHours     *float64 `json:"work_hours"`
	OvertimeHours float64  `json:"overtime_hours"`
	Status        string   `json:"status"`
}

type CheckInResponse struct {
	CheckInTime string             `json:"check_in_time"`
	Attendance  AttendanceResponse `json:"attendance"`
}

type CheckOutResponse struct {
	WorkHours  float64            `json:"work_hours"`
	Attendance AttendanceResponse `json:"attendance"`
}

// MonthlySummary is the day-accounting rollup for one employee and month.
// PayableDays = present + 0.5*half + leave; UnpaidDays = absent.
type MonthlySummary struct {
	PresentDays int     `json:"present_days"`
	HalfDays    int     `json:"half_days"`
	LeaveDays   int     `json:"leave_days"`
	AbsentDays  int     `json:"absent_days"`
	PayableDays float64 `json:"payable_days"`
	UnpaidDays  int     `json:"unpaid_days"`
}

// MyAttendanceFilter selects one calendar month; zero values mean the
// current month.
type MyAttendanceFilter struct {
	Month int
	Year  int
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != 0 && !validator.IsValidMonth(f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Year != 0 && !validator.IsValidYear(f.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	// A month without a year (or vice versa) is ambiguous
	if (f.Month == 0) != (f.Year == 0) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and year must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MyAttendanceResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	Summary     MonthlySummary       `json:"summary"`
}

// UpdateAttendanceRequest is the admin correction payload. Omitted fields
// are left as-is; when both instants end up set, work hours and overtime are
// recomputed and status is re-derived unless supplied explicitly.
type UpdateAttendanceRequest struct {
	ID       string  `json:"-"`
	Status   *string `json:"status,omitempty"`
	CheckIn  *string `json:"check_in,omitempty"`  // RFC3339
	CheckOut *string `json:"check_out,omitempty"` // RFC3339
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "attendance id is required",
		})
	}

	if r.Status == nil && r.CheckIn == nil && r.CheckOut == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of status, check_in, check_out is required",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, ABSENT, HALF_DAY, LEAVE",
		})
	}

	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an RFC3339 timestamp",
			})
		}
	}

	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RosterEntry is one employee's line in the admin daily roster.
type RosterEntry struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	CheckInTime  *string  `json:"check_in_time,omitempty"`
	CheckOutTime *string  `json:"check_out_time,omitempty"`
	WorkHours    *float64 `json:"work_hours,omitempty"`
}

// DailyRosterResponse partitions a company's employees for one date.
// Employees with no ledger row for the day land in the absent bucket.
type DailyRosterResponse struct {
	Date    string        `json:"date"`
	Present []RosterEntry `json:"present"`
	HalfDay []RosterEntry `json:"half_day"`
	OnLeave []RosterEntry `json:"on_leave"`
	Absent  []RosterEntry `json:"absent"`
}
