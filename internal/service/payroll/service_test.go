package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/attendance"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/employee"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/payroll"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCompanyID = "comp-1"

func contextWithClaims(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func adminContext(t *testing.T) context.Context {
	return contextWithClaims(t, map[string]interface{}{
		"user_id":    "admin-1",
		"company_id": testCompanyID,
		"role":       "admin",
		"type":       "access",
	})
}

func employeeContext(t *testing.T, employeeID string) context.Context {
	return contextWithClaims(t, map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": employeeID,
		"company_id":  testCompanyID,
		"role":        "employee",
		"type":        "access",
	})
}

type fakeSalaryRepo struct {
	records map[string]payroll.SalaryRecord // by employee ID
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{records: make(map[string]payroll.SalaryRecord)}
}

func (f *fakeSalaryRepo) Upsert(ctx context.Context, record *payroll.SalaryRecord) error {
	if existing, ok := f.records[record.EmployeeID]; ok {
		record.ID = existing.ID
	} else {
		record.ID = uuid.NewString()
	}
	f.records[record.EmployeeID] = *record
	return nil
}

func (f *fakeSalaryRepo) GetByEmployee(ctx context.Context, employeeID, companyID string) (*payroll.SalaryRecord, error) {
	record, ok := f.records[employeeID]
	if !ok || record.CompanyID != companyID {
		return nil, payroll.ErrSalaryNotFound
	}
	copied := record
	return &copied, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id && e.CompanyID == companyID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return f.employees, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, att)
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string, companyID string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.EmployeeID == employeeID && att.CompanyID == companyID && !att.Date.Before(from) && !att.Date.After(to) {
			out = append(out, att)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func newTestService(salaryRepo *fakeSalaryRepo, empRepo *fakeEmployeeRepo, attRepo *fakeAttendanceRepo) payroll.PayrollService {
	return NewPayrollService(salaryRepo, empRepo, attRepo, time.UTC)
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestUpsertSalary_RecomputesTotal(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", CompanyID: testCompanyID},
	}}
	svc := newTestService(newFakeSalaryRepo(), empRepo, &fakeAttendanceRepo{})

	response, err := svc.UpsertSalary(adminContext(t), &payroll.UpsertSalaryRequest{
		EmployeeID: "emp-1",
		WageType:   "MONTHLY",
		BaseSalary: d("0"),
		Components: payroll.SalaryComponents{
			Basic:     d("25000"),
			HRA:       d("12500"),
			Allowance: d("7187.5"),
			Bonus:     d("2092.5"),
		},
		Deductions: payroll.SalaryDeductions{Tax: d("200")},
	})
	require.NoError(t, err)
	assert.True(t, response.Total.Equal(d("46580")), "got %s", response.Total)
}

func TestUpsertSalary_ReplacesExisting(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", CompanyID: testCompanyID},
	}}
	salaryRepo := newFakeSalaryRepo()
	svc := newTestService(salaryRepo, empRepo, &fakeAttendanceRepo{})

	_, err := svc.UpsertSalary(adminContext(t), &payroll.UpsertSalaryRequest{
		EmployeeID: "emp-1",
		WageType:   "MONTHLY",
		BaseSalary: d("30000"),
	})
	require.NoError(t, err)

	updated, err := svc.UpsertSalary(adminContext(t), &payroll.UpsertSalaryRequest{
		EmployeeID: "emp-1",
		WageType:   "YEARLY",
		BaseSalary: d("400000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "YEARLY", updated.WageType)
	assert.True(t, updated.Total.Equal(d("400000")))
	assert.Len(t, salaryRepo.records, 1)
}

func TestUpsertSalary_NegativeAmountFails(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", CompanyID: testCompanyID},
	}}
	svc := newTestService(newFakeSalaryRepo(), empRepo, &fakeAttendanceRepo{})

	_, err := svc.UpsertSalary(adminContext(t), &payroll.UpsertSalaryRequest{
		EmployeeID: "emp-1",
		WageType:   "MONTHLY",
		BaseSalary: d("-1"),
	})
	assert.Error(t, err)
}

func TestGetSalary_EmployeeSelfOnly(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", CompanyID: testCompanyID},
		{ID: "emp-2", CompanyID: testCompanyID},
	}}
	salaryRepo := newFakeSalaryRepo()
	svc := newTestService(salaryRepo, empRepo, &fakeAttendanceRepo{})

	_, err := svc.UpsertSalary(adminContext(t), &payroll.UpsertSalaryRequest{
		EmployeeID: "emp-1",
		WageType:   "MONTHLY",
		BaseSalary: d("30000"),
	})
	require.NoError(t, err)

	own, err := svc.GetSalary(employeeContext(t, "emp-1"), "emp-1")
	require.NoError(t, err)
	assert.True(t, own.Total.Equal(d("30000")))

	_, err = svc.GetSalary(employeeContext(t, "emp-2"), "emp-1")
	assert.ErrorIs(t, err, payroll.ErrForbiddenEmployee)

	// Admin reads anyone in the company
	asAdmin, err := svc.GetSalary(adminContext(t), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "emp-1", asAdmin.EmployeeID)
}

func TestGetSalary_MissingRecord(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", CompanyID: testCompanyID},
	}}
	svc := newTestService(newFakeSalaryRepo(), empRepo, &fakeAttendanceRepo{})

	_, err := svc.GetSalary(adminContext(t), "emp-1")
	assert.ErrorIs(t, err, payroll.ErrSalaryNotFound)
}

func TestPayableDays_CrossTenantIsNotFound(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-other", CompanyID: "comp-other"},
	}}
	svc := newTestService(newFakeSalaryRepo(), empRepo, &fakeAttendanceRepo{})

	_, err := svc.PayableDays(adminContext(t), &payroll.PayableDaysRequest{
		EmployeeID: "emp-other",
		Month:      3,
		Year:       2026,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPayableDays_Breakdown(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", CompanyID: testCompanyID},
	}}
	attRepo := &fakeAttendanceRepo{}
	day := func(n int, status attendance.Status) attendance.Attendance {
		return attendance.Attendance{
			EmployeeID: "emp-1",
			CompanyID:  testCompanyID,
			Date:       time.Date(2026, 3, n, 0, 0, 0, 0, time.UTC),
			Status:     status,
		}
	}
	n := 1
	for i := 0; i < 18; i++ {
		attRepo.records = append(attRepo.records, day(n, attendance.StatusPresent))
		n++
	}
	for i := 0; i < 2; i++ {
		attRepo.records = append(attRepo.records, day(n, attendance.StatusHalfDay))
		n++
	}
	attRepo.records = append(attRepo.records, day(n, attendance.StatusLeave))
	n++
	attRepo.records = append(attRepo.records, day(n, attendance.StatusAbsent))

	svc := newTestService(newFakeSalaryRepo(), empRepo, attRepo)
	breakdown, err := svc.PayableDays(adminContext(t), &payroll.PayableDaysRequest{
		EmployeeID: "emp-1",
		Month:      3,
		Year:       2026,
	})
	require.NoError(t, err)
	assert.Equal(t, 18, breakdown.PresentDays)
	assert.Equal(t, 2, breakdown.HalfDays)
	assert.Equal(t, 1, breakdown.LeaveDays)
	assert.Equal(t, 1, breakdown.AbsentDays)
	assert.Equal(t, 20.0, breakdown.PayableDays)
	assert.Equal(t, 1, breakdown.UnpaidDays)
}
