package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/config"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/attendance"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/employee"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/leave"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/timeutil"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	attendance.AttendanceRepository
	policy config.LeavePolicy
	loc    *time.Location
	now    func() time.Time
}

func NewLeaveService(
	leaveRepository leave.LeaveRequestRepository,
	attendanceRepository attendance.AttendanceRepository,
	policy config.LeavePolicy,
	loc *time.Location,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepository,
		AttendanceRepository:   attendanceRepository,
		policy:                 policy,
		loc:                    loc,
		now:                    time.Now,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	from, _ := time.ParseInLocation("2006-01-02", req.FromDate, s.loc)
	to, _ := time.ParseInLocation("2006-01-02", req.ToDate, s.loc)

	totalDays, err := timeutil.InclusiveDayCount(from, to)
	if err != nil {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Type:       leave.LeaveType(req.LeaveType),
		StartDate:  from,
		EndDate:    to,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toResponse(created), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	decided, err := s.decide(ctx, req, leave.LeaveRequestStatusApproved)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.markAttendanceOnLeave(ctx, decided)

	return toResponse(decided), nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	if req.AdminComment == nil || *req.AdminComment == "" {
		return leave.LeaveRequestResponse{}, leave.ErrCommentRequired
	}

	decided, err := s.decide(ctx, req, leave.LeaveRequestStatusRejected)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toResponse(decided), nil
}

func (s *LeaveServiceImpl) decide(ctx context.Context, req leave.DecideLeaveRequest, status leave.LeaveRequestStatus) (leave.LeaveRequest, error) {
	if validator.IsEmpty(req.ID) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return leave.LeaveRequest{}, fmt.Errorf("company_id claim is missing or invalid")
	}
	adminID, ok := claims["user_id"].(string)
	if !ok || adminID == "" {
		return leave.LeaveRequest{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequest{}, leave.ErrAlreadyProcessed
	}

	decidedAt := s.now().In(s.loc)
	request.Status = status
	request.AdminComment = req.AdminComment
	request.DecidedBy = &adminID
	request.DecidedAt = &decidedAt

	if err := s.LeaveRequestRepository.UpdateDecision(ctx, request); err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

// markAttendanceOnLeave stamps LEAVE onto the ledger for every covered day so
// the monthly summary counts the days without consulting leave requests.
// Failures are logged, the approval itself already stands.
func (s *LeaveServiceImpl) markAttendanceOnLeave(ctx context.Context, request leave.LeaveRequest) {
	for day := timeutil.StartOfDay(request.StartDate); !day.After(request.EndDate); day = day.AddDate(0, 0, 1) {
		record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, request.EmployeeID, day, request.CompanyID)
		if err != nil {
			slog.Error("failed to load attendance for approved leave", "employee_id", request.EmployeeID, "date", day, "error", err)
			continue
		}

		if record == nil {
			_, err = s.AttendanceRepository.Create(ctx, attendance.Attendance{
				EmployeeID: request.EmployeeID,
				CompanyID:  request.CompanyID,
				Date:       day,
				Status:     attendance.StatusLeave,
			})
			if err != nil && !errors.Is(err, attendance.ErrAlreadyCheckedIn) {
				slog.Error("failed to create leave attendance record", "employee_id", request.EmployeeID, "date", day, "error", err)
			}
			continue
		}

		// A day with worked hours keeps its earned status
		if record.WorkHours != nil && *record.WorkHours > 0 {
			continue
		}
		record.Status = attendance.StatusLeave
		if err := s.AttendanceRepository.Update(ctx, *record); err != nil {
			slog.Error("failed to mark attendance record as leave", "employee_id", request.EmployeeID, "date", day, "error", err)
		}
	}
}

// Balance implements leave.LeaveService.
func (s *LeaveServiceImpl) Balance(ctx context.Context, year int) (leave.BalanceResponse, error) {
	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	if year == 0 {
		year = s.now().In(s.loc).Year()
	}
	if !validator.IsValidYear(year) {
		return leave.BalanceResponse{}, validator.ValidationErrors{{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		}}
	}

	used, err := s.LeaveRequestRepository.SumApprovedDaysByType(ctx, employeeID, year, companyID)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to sum approved leave days: %w", err)
	}

	return leave.BalanceResponse{
		Year:   year,
		Paid:   typeBalance(s.policy.PaidAllowance, used[leave.LeaveTypePaid]),
		Sick:   typeBalance(s.policy.SickAllowance, used[leave.LeaveTypeSick]),
		Unpaid: typeBalance(s.policy.UnpaidAllowance, used[leave.LeaveTypeUnpaid]),
	}, nil
}

// GetMyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toResponses(requests), nil
}

// ListRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return nil, fmt.Errorf("company_id claim is missing or invalid")
	}

	requests, err := s.LeaveRequestRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toResponses(requests), nil
}

func typeBalance(total, used int) leave.TypeBalance {
	return leave.TypeBalance{
		Total:     total,
		Used:      used,
		Remaining: total - used,
	}
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

func toResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	response := leave.LeaveRequestResponse{
		ID:           request.ID,
		EmployeeID:   request.EmployeeID,
		LeaveType:    string(request.Type),
		FromDate:     request.StartDate.Format("2006-01-02"),
		ToDate:       request.EndDate.Format("2006-01-02"),
		TotalDays:    request.TotalDays,
		Reason:       request.Reason,
		Status:       string(request.Status),
		AdminComment: request.AdminComment,
		AppliedAt:    request.CreatedAt.Format(time.RFC3339),
	}
	if request.EmployeeName != nil {
		response.EmployeeName = *request.EmployeeName
	}
	return response
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toResponse(request))
	}
	return responses
}
