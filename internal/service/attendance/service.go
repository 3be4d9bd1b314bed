package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/config"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/attendance"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/employee"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/leave"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/timeutil"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	leave.LeaveRequestRepository
	policy config.AttendancePolicy
	loc    *time.Location
	now    func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	leaveRepository leave.LeaveRequestRepository,
	policy config.AttendancePolicy,
	loc *time.Location,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository:   attendanceRepository,
		EmployeeRepository:     employeeRepository,
		LeaveRequestRepository: leaveRepository,
		policy:                 policy,
		loc:                    loc,
		now:                    time.Now,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.CheckInResponse, error) {
	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	nowLocal := a.now().In(a.loc)
	today := timeutil.StartOfDay(nowLocal)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today, companyID)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing != nil {
		if existing.CheckIn != nil {
			return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
		}

		// A row without a check-in (an approved-leave marker, or an admin
		// correction) does not block working the day; check in on it.
		existing.CheckIn = &nowLocal
		if err := a.AttendanceRepository.Update(ctx, *existing); err != nil {
			return attendance.CheckInResponse{}, fmt.Errorf("failed to update attendance: %w", err)
		}
		return attendance.CheckInResponse{
			CheckInTime: nowLocal.Format(time.RFC3339),
			Attendance:  toResponse(*existing),
		}, nil
	}

	// The unique (employee_id, date) index catches the race where two
	// requests pass the lookup above at the same time.
	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Date:       today,
		CheckIn:    &nowLocal,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	return attendance.CheckInResponse{
		CheckInTime: nowLocal.Format(time.RFC3339),
		Attendance:  toResponse(created),
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.CheckOutResponse, error) {
	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	nowLocal := a.now().In(a.loc)
	today := timeutil.StartOfDay(nowLocal)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today, companyID)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil || record.CheckIn == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if nowLocal.Before(*record.CheckIn) {
		return attendance.CheckOutResponse{}, attendance.ErrCheckOutBeforeIn
	}

	workHours := timeutil.RoundHours(nowLocal.Sub(*record.CheckIn))
	overtime := timeutil.Round2(workHours - a.policy.FullDayHours)
	if overtime < 0 {
		overtime = 0
	}

	record.CheckOut = &nowLocal
	record.WorkHours = &workHours
	record.OvertimeHours = overtime
	record.Status = a.deriveStatus(workHours)

	if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return attendance.CheckOutResponse{
		WorkHours:  workHours,
		Attendance: toResponse(*record),
	}, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.MyAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	nowLocal := a.now().In(a.loc)
	month, year := filter.Month, filter.Year
	if month == 0 {
		month = int(nowLocal.Month())
		year = nowLocal.Year()
	}

	first, last := timeutil.MonthRange(year, time.Month(month), a.loc)
	records, err := a.AttendanceRepository.ListByEmployeeAndRange(ctx, employeeID, first, last, companyID)
	if err != nil {
		return attendance.MyAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}

	return attendance.MyAttendanceResponse{
		Attendances: responses,
		Summary:     Summarize(records),
	}, nil
}

// Summarize rolls one month of records into day counts. Payable days are
// present + half/2 + leave; absent days are the unpaid remainder.
func Summarize(records []attendance.Attendance) attendance.MonthlySummary {
	var summary attendance.MonthlySummary
	for _, record := range records {
		switch record.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusHalfDay:
			summary.HalfDays++
		case attendance.StatusLeave:
			summary.LeaveDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		}
	}
	summary.PayableDays = float64(summary.PresentDays) + 0.5*float64(summary.HalfDays) + float64(summary.LeaveDays)
	summary.UnpaidDays = summary.AbsentDays
	return summary
}

// Update implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return attendance.AttendanceResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	record, err := a.AttendanceRepository.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.CheckIn != nil {
		parsed, pErr := time.Parse(time.RFC3339, *req.CheckIn)
		if pErr != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("invalid check_in: %w", pErr)
		}
		local := parsed.In(a.loc)
		record.CheckIn = &local
	}
	if req.CheckOut != nil {
		parsed, pErr := time.Parse(time.RFC3339, *req.CheckOut)
		if pErr != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("invalid check_out: %w", pErr)
		}
		local := parsed.In(a.loc)
		record.CheckOut = &local
	}

	if record.CheckIn != nil && record.CheckOut != nil {
		if record.CheckOut.Before(*record.CheckIn) {
			return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeIn
		}
		workHours := timeutil.RoundHours(record.CheckOut.Sub(*record.CheckIn))
		overtime := timeutil.Round2(workHours - a.policy.FullDayHours)
		if overtime < 0 {
			overtime = 0
		}
		record.WorkHours = &workHours
		record.OvertimeHours = overtime
		record.Status = a.deriveStatus(workHours)
	}

	switch {
	case req.Status != nil:
		// An explicit status always wins over the derived one
		record.Status = attendance.Status(*req.Status)
	case record.WorkHours == nil || *record.WorkHours == 0:
		onLeave, lErr := a.LeaveRequestRepository.ApprovedLeaveForDay(ctx, record.EmployeeID, record.Date, companyID)
		if lErr == nil && onLeave {
			record.Status = attendance.StatusLeave
		}
	}

	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(record), nil
}

// DailyRoster implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DailyRoster(ctx context.Context, date string) (attendance.DailyRosterResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.DailyRosterResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return attendance.DailyRosterResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	day := timeutil.StartOfDay(a.now().In(a.loc))
	if date != "" {
		parsed, pErr := time.ParseInLocation("2006-01-02", date, a.loc)
		if pErr != nil {
			return attendance.DailyRosterResponse{}, fmt.Errorf("invalid date: %w", pErr)
		}
		day = parsed
	}

	employees, err := a.EmployeeRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return attendance.DailyRosterResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	records, err := a.AttendanceRepository.ListByCompanyAndDate(ctx, companyID, day)
	if err != nil {
		return attendance.DailyRosterResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	byEmployee := make(map[string]attendance.Attendance, len(records))
	for _, record := range records {
		byEmployee[record.EmployeeID] = record
	}

	response := attendance.DailyRosterResponse{
		Date:    day.Format("2006-01-02"),
		Present: []attendance.RosterEntry{},
		HalfDay: []attendance.RosterEntry{},
		OnLeave: []attendance.RosterEntry{},
		Absent:  []attendance.RosterEntry{},
	}

	for _, emp := range employees {
		record, hasRecord := byEmployee[emp.ID]
		entry := attendance.RosterEntry{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
		}
		if !hasRecord {
			response.Absent = append(response.Absent, entry)
			continue
		}

		entry.CheckInTime = timePtrToString(record.CheckIn)
		entry.CheckOutTime = timePtrToString(record.CheckOut)
		entry.WorkHours = record.WorkHours

		switch record.Status {
		case attendance.StatusHalfDay:
			response.HalfDay = append(response.HalfDay, entry)
		case attendance.StatusLeave:
			response.OnLeave = append(response.OnLeave, entry)
		case attendance.StatusAbsent:
			response.Absent = append(response.Absent, entry)
		default:
			response.Present = append(response.Present, entry)
		}
	}

	return response, nil
}

func (a *AttendanceServiceImpl) deriveStatus(workHours float64) attendance.Status {
	if workHours >= a.policy.HalfDayHours {
		return attendance.StatusPresent
	}
	return attendance.StatusHalfDay
}

func identityFromContext(ctx context.Context) (employeeID string, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}
	employeeID, ok = claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", employee.ErrNoEmployeeProfile
	}
	return employeeID, companyID, nil
}

func toResponse(record attendance.Attendance) attendance.AttendanceResponse {
	response := attendance.AttendanceResponse{
		ID:            record.ID,
		EmployeeID:    record.EmployeeID,
		Date:          record.Date.Format("2006-01-02"),
		CheckInTime:   timePtrToString(record.CheckIn),
		CheckOutTime:  timePtrToString(record.CheckOut),
		WorkHours:     record.WorkHours,
		OvertimeHours: record.OvertimeHours,
		Status:        string(record.Status),
	}
	if record.EmployeeName != nil {
		response.EmployeeName = *record.EmployeeName
	}
	return response
}
