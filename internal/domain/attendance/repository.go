package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// All methods include companyID parameter to prevent cross-company data access.
type AttendanceRepository interface {
	// Create inserts a new record. The attendances table carries a unique
	// constraint on (employee_id, date); a violation is returned as
	// ErrAlreadyCheckedIn so concurrent double check-ins fail deterministically.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one employee and day.
	// Returns (nil, nil) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*Attendance, error)

	// Update rewrites the mutable fields of an existing record
	Update(ctx context.Context, att Attendance) error

	// ListByEmployeeAndRange retrieves an employee's records with
	// from <= date <= to, most recent first
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]Attendance, error)

	// ListByCompanyAndDate retrieves every record of a company for one date
	ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]Attendance, error)
}
