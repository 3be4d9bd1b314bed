package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusHalfDay Status = "HALF_DAY"
	StatusLeave   Status = "LEAVE"
)

// ValidStatuses lists every status an admin correction may set.
var ValidStatuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusHalfDay),
	string(StatusLeave),
}

// Attendance is one ledger row per (employee, calendar day). Date is stored
// normalized to midnight; CheckIn/CheckOut are absolute instants (UTC).
type Attendance struct {
	ID            string
	EmployeeID    string
	CompanyID     string
	Date          time.Time
	CheckIn       *time.Time
	CheckOut      *time.Time
	WorkHours     *float64
	OvertimeHours float64
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO / Join
	EmployeeName *string
}
