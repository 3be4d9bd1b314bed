package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the start of the authenticated employee's work day
	CheckIn(ctx context.Context) (CheckInResponse, error)

	// CheckOut closes today's open record and computes work hours, overtime
	// and the day's status
	CheckOut(ctx context.Context) (CheckOutResponse, error)

	// GetMyAttendance retrieves one month of records plus the day-accounting
	// summary for the authenticated employee
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (MyAttendanceResponse, error)

	// Update applies an admin correction to a record
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DailyRoster partitions the company's employees for one date (admin)
	DailyRoster(ctx context.Context, date string) (DailyRosterResponse, error)
}
