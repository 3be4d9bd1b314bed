package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/config"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/attendance"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/leave"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmployeeID = "emp-1"
	testCompanyID  = "comp-1"
)

var testPolicy = config.LeavePolicy{PaidAllowance: 20, SickAllowance: 10, UnpaidAllowance: 5}

func employeeContext(t *testing.T) context.Context {
	t.Helper()
	return contextWithClaims(t, map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": testEmployeeID,
		"company_id":  testCompanyID,
		"role":        "employee",
		"type":        "access",
	})
}

func adminContext(t *testing.T) context.Context {
	t.Helper()
	return contextWithClaims(t, map[string]interface{}{
		"user_id":    "admin-1",
		"company_id": testCompanyID,
		"role":       "admin",
		"type":       "access",
	})
}

func contextWithClaims(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	req.ID = fmt.Sprintf("leave-%d", f.nextID)
	req.CreatedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok || req.CompanyID != companyID {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) UpdateDecision(ctx context.Context, req leave.LeaveRequest) error {
	existing, ok := f.requests[req.ID]
	if !ok || existing.Status != leave.LeaveRequestStatusPending {
		return leave.ErrAlreadyProcessed
	}
	f.requests[req.ID] = req
	return nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.CompanyID == companyID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByCompany(ctx context.Context, companyID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.CompanyID == companyID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) SumApprovedDaysByType(ctx context.Context, employeeID string, year int, companyID string) (map[leave.LeaveType]int, error) {
	used := make(map[leave.LeaveType]int)
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.CompanyID == companyID &&
			req.Status == leave.LeaveRequestStatusApproved && req.StartDate.Year() == year {
			used[req.Type] += req.TotalDays
		}
	}
	return used, nil
}

func (f *fakeLeaveRepo) ApprovedLeaveForDay(ctx context.Context, employeeID string, date time.Time, companyID string) (bool, error) {
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.Status == leave.LeaveRequestStatusApproved &&
			!date.Before(req.StartDate) && !date.After(req.EndDate) {
			return true, nil
		}
	}
	return false, nil
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == att.EmployeeID && existing.Date.Equal(att.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string, companyID string) (attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*attendance.Attendance, error) {
	for _, att := range f.records {
		if att.EmployeeID == employeeID && att.Date.Equal(date) {
			copied := att
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	f.records[att.ID] = att
	return nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func newTestService(leaveRepo *fakeLeaveRepo, attRepo *fakeAttendanceRepo) *LeaveServiceImpl {
	return NewLeaveService(leaveRepo, attRepo, testPolicy, time.UTC)
}

func TestApply_InclusiveDayCount(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo(), newFakeAttendanceRepo())
	ctx := employeeContext(t)

	created, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		LeaveType: "PAID",
		FromDate:  "2026-04-06",
		ToDate:    "2026-04-08",
		Reason:    "family event",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created.TotalDays)
	assert.Equal(t, string(leave.LeaveRequestStatusPending), created.Status)
}

func TestApply_SingleDay(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo(), newFakeAttendanceRepo())
	ctx := employeeContext(t)

	created, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		LeaveType: "SICK",
		FromDate:  "2026-04-06",
		ToDate:    "2026-04-06",
		Reason:    "fever",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.TotalDays)
}

func TestApply_EndBeforeStartFails(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo(), newFakeAttendanceRepo())
	ctx := employeeContext(t)

	_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		LeaveType: "PAID",
		FromDate:  "2026-04-08",
		ToDate:    "2026-04-06",
		Reason:    "typo",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestApprove_MarksAttendanceLeave(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(leaveRepo, attRepo)

	created, err := svc.Apply(employeeContext(t), leave.ApplyLeaveRequest{
		LeaveType: "PAID",
		FromDate:  "2026-04-06",
		ToDate:    "2026-04-07",
		Reason:    "trip",
	})
	require.NoError(t, err)

	approved, err := svc.Approve(adminContext(t), leave.DecideLeaveRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveRequestStatusApproved), approved.Status)

	// Both covered days now carry LEAVE rows in the ledger
	marked := 0
	for _, att := range attRepo.records {
		if att.Status == attendance.StatusLeave {
			marked++
		}
	}
	assert.Equal(t, 2, marked)
}

func TestApprove_AlreadyProcessedFails(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := newTestService(leaveRepo, newFakeAttendanceRepo())

	created, err := svc.Apply(employeeContext(t), leave.ApplyLeaveRequest{
		LeaveType: "PAID",
		FromDate:  "2026-04-06",
		ToDate:    "2026-04-06",
		Reason:    "trip",
	})
	require.NoError(t, err)

	_, err = svc.Approve(adminContext(t), leave.DecideLeaveRequest{ID: created.ID})
	require.NoError(t, err)

	_, err = svc.Approve(adminContext(t), leave.DecideLeaveRequest{ID: created.ID})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestReject_RequiresComment(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := newTestService(leaveRepo, newFakeAttendanceRepo())

	created, err := svc.Apply(employeeContext(t), leave.ApplyLeaveRequest{
		LeaveType: "UNPAID",
		FromDate:  "2026-04-06",
		ToDate:    "2026-04-06",
		Reason:    "errand",
	})
	require.NoError(t, err)

	_, err = svc.Reject(adminContext(t), leave.DecideLeaveRequest{ID: created.ID})
	assert.ErrorIs(t, err, leave.ErrCommentRequired)

	comment := "short notice"
	rejected, err := svc.Reject(adminContext(t), leave.DecideLeaveRequest{ID: created.ID, AdminComment: &comment})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveRequestStatusRejected), rejected.Status)
	require.NotNil(t, rejected.AdminComment)
	assert.Equal(t, comment, *rejected.AdminComment)
}

func TestBalance_UsedAndRemaining(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := newTestService(leaveRepo, newFakeAttendanceRepo())

	created, err := svc.Apply(employeeContext(t), leave.ApplyLeaveRequest{
		LeaveType: "PAID",
		FromDate:  "2026-04-06",
		ToDate:    "2026-04-10",
		Reason:    "vacation",
	})
	require.NoError(t, err)
	_, err = svc.Approve(adminContext(t), leave.DecideLeaveRequest{ID: created.ID})
	require.NoError(t, err)

	// A pending request does not consume balance
	_, err = svc.Apply(employeeContext(t), leave.ApplyLeaveRequest{
		LeaveType: "SICK",
		FromDate:  "2026-05-04",
		ToDate:    "2026-05-05",
		Reason:    "flu",
	})
	require.NoError(t, err)

	balance, err := svc.Balance(employeeContext(t), 2026)
	require.NoError(t, err)
	assert.Equal(t, leave.TypeBalance{Total: 20, Used: 5, Remaining: 15}, balance.Paid)
	assert.Equal(t, leave.TypeBalance{Total: 10, Used: 0, Remaining: 10}, balance.Sick)
	assert.Equal(t, leave.TypeBalance{Total: 5, Used: 0, Remaining: 5}, balance.Unpaid)
}

func TestDecide_CrossCompanyIsNotFound(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := newTestService(leaveRepo, newFakeAttendanceRepo())

	created, err := svc.Apply(employeeContext(t), leave.ApplyLeaveRequest{
		LeaveType: "PAID",
		FromDate:  "2026-04-06",
		ToDate:    "2026-04-06",
		Reason:    "trip",
	})
	require.NoError(t, err)

	otherAdmin := contextWithClaims(t, map[string]interface{}{
		"user_id":    "admin-2",
		"company_id": "comp-other",
		"role":       "admin",
		"type":       "access",
	})
	_, err = svc.Approve(otherAdmin, leave.DecideLeaveRequest{ID: created.ID})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
