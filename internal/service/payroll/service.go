package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/attendance"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/employee"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/payroll"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/user"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/timeutil"
	attendanceservice "github.com/MihirPatel2105/odooXGCET-26-sub000/internal/service/attendance"
	"github.com/go-chi/jwtauth/v5"
)

type PayrollServiceImpl struct {
	payroll.SalaryRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository
	loc *time.Location
}

func NewPayrollService(
	salaryRepository payroll.SalaryRepository,
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	loc *time.Location,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		SalaryRepository:     salaryRepository,
		EmployeeRepository:   employeeRepository,
		AttendanceRepository: attendanceRepository,
		loc:                  loc,
	}
}

// GetSalary implements payroll.PayrollService. Admins read any employee of
// their company; employees read only themselves.
func (s *PayrollServiceImpl) GetSalary(ctx context.Context, employeeID string) (*payroll.SalaryResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return nil, fmt.Errorf("company_id claim is missing or invalid")
	}

	role, _ := claims["role"].(string)
	if role != string(user.RoleAdmin) {
		callerEmployeeID, _ := claims["employee_id"].(string)
		if callerEmployeeID != employeeID {
			return nil, payroll.ErrForbiddenEmployee
		}
	}

	// Cross-tenant probes come back as a plain not found
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID); err != nil {
		return nil, err
	}

	record, err := s.SalaryRepository.GetByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return nil, err
	}

	return toResponse(record), nil
}

// UpsertSalary implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpsertSalary(ctx context.Context, req *payroll.UpsertSalaryRequest) (*payroll.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return nil, fmt.Errorf("company_id claim is missing or invalid")
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return nil, err
	}

	record := &payroll.SalaryRecord{
		EmployeeID: req.EmployeeID,
		CompanyID:  companyID,
		WageType:   payroll.WageType(req.WageType),
		BaseSalary: req.BaseSalary,
		Components: req.Components,
		Deductions: req.Deductions,
		Total:      payroll.ComputeTotal(req.BaseSalary, req.Components, req.Deductions),
	}

	if err := s.SalaryRepository.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to upsert salary record: %w", err)
	}

	return toResponse(record), nil
}

// PayableDays implements payroll.PayrollService.
func (s *PayrollServiceImpl) PayableDays(ctx context.Context, req *payroll.PayableDaysRequest) (*payroll.PayableDaysResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return nil, fmt.Errorf("company_id claim is missing or invalid")
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return nil, err
	}

	first, last := timeutil.MonthRange(req.Year, time.Month(req.Month), s.loc)
	records, err := s.AttendanceRepository.ListByEmployeeAndRange(ctx, req.EmployeeID, first, last, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	summary := attendanceservice.Summarize(records)

	return &payroll.PayableDaysResponse{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Year:        req.Year,
		PresentDays: summary.PresentDays,
		HalfDays:    summary.HalfDays,
		LeaveDays:   summary.LeaveDays,
		AbsentDays:  summary.AbsentDays,
		PayableDays: summary.PayableDays,
		UnpaidDays:  summary.UnpaidDays,
		PayslipHint: fmt.Sprintf("pay %.1f of %d recorded days", summary.PayableDays, len(records)),
	}, nil
}

func toResponse(record *payroll.SalaryRecord) *payroll.SalaryResponse {
	return &payroll.SalaryResponse{
		ID:         record.ID,
		EmployeeID: record.EmployeeID,
		WageType:   string(record.WageType),
		BaseSalary: record.BaseSalary,
		Components: record.Components,
		Deductions: record.Deductions,
		Total:      record.Total,
	}
}
