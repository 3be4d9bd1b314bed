package employee

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/company"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/employee"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/user"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminContext(t *testing.T, userID, companyID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id":    userID,
		"company_id": companyID,
		"role":       "admin",
		"type":       "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeUserRepo struct {
	byEmail map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = "user-new"
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

type fakeEmployeeRepo struct {
	byUserID map[string]employee.Employee
	list     []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = "emp-new"
	f.list = append(f.list, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	for _, e := range f.list {
		if e.ID == id && e.CompanyID == companyID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	e, ok := f.byUserID[userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) ListByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.list {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeCompanyRepo struct{}

func (f *fakeCompanyRepo) Create(ctx context.Context, c company.Company) (company.Company, error) {
	return c, nil
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id string) (company.Company, error) {
	return company.Company{ID: id, Name: "Acme Pvt Ltd"}, nil
}

func newService(userRepo *fakeUserRepo, employeeRepo *fakeEmployeeRepo) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		UserRepository:     userRepo,
		CompanyRepository:  &fakeCompanyRepo{},
		loc:                time.UTC,
	}
}

func TestOnboard_DuplicateEmail(t *testing.T) {
	userRepo := &fakeUserRepo{byEmail: map[string]user.User{
		"taken@acme.test": {ID: "user-1", Email: "taken@acme.test"},
	}}
	svc := newService(userRepo, &fakeEmployeeRepo{byUserID: map[string]employee.Employee{}})
	ctx := adminContext(t, "user-admin", "comp-1")

	_, err := svc.Onboard(ctx, employee.OnboardEmployeeRequest{
		FullName: "Jordan Lee",
		Email:    "taken@acme.test",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestOnboard_InvalidRequest(t *testing.T) {
	svc := newService(
		&fakeUserRepo{byEmail: map[string]user.User{}},
		&fakeEmployeeRepo{byUserID: map[string]employee.Employee{}},
	)
	ctx := adminContext(t, "user-admin", "comp-1")

	_, err := svc.Onboard(ctx, employee.OnboardEmployeeRequest{Email: "not-an-email"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		fields = append(fields, ve.Field)
	}
	assert.Contains(t, fields, "full_name")
	assert.Contains(t, fields, "email")
}

func TestGetMe_NoProfile(t *testing.T) {
	svc := newService(
		&fakeUserRepo{byEmail: map[string]user.User{}},
		&fakeEmployeeRepo{byUserID: map[string]employee.Employee{}},
	)
	ctx := adminContext(t, "user-admin", "comp-1")

	_, err := svc.GetMe(ctx)
	assert.ErrorIs(t, err, employee.ErrNoEmployeeProfile)
}

func TestGetMe_ReturnsProfile(t *testing.T) {
	hireDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	employeeRepo := &fakeEmployeeRepo{byUserID: map[string]employee.Employee{
		"user-7": {
			ID:           "emp-7",
			UserID:       "user-7",
			CompanyID:    "comp-1",
			EmployeeCode: "EMP-A1B2C3",
			FullName:     "Priya Shah",
			HireDate:     hireDate,
			Status:       employee.StatusActive,
		},
	}}
	svc := newService(&fakeUserRepo{byEmail: map[string]user.User{}}, employeeRepo)
	ctx := adminContext(t, "user-7", "comp-1")

	resp, err := svc.GetMe(ctx)
	require.NoError(t, err)
	assert.Equal(t, "emp-7", resp.ID)
	assert.Equal(t, "EMP-A1B2C3", resp.EmployeeCode)
	assert.Equal(t, "2025-03-10", resp.HireDate)
	assert.Equal(t, "active", resp.Status)
}

func TestList_ScopedToCompany(t *testing.T) {
	employeeRepo := &fakeEmployeeRepo{
		byUserID: map[string]employee.Employee{},
		list: []employee.Employee{
			{ID: "emp-1", CompanyID: "comp-1", FullName: "A", HireDate: time.Now()},
			{ID: "emp-2", CompanyID: "comp-1", FullName: "B", HireDate: time.Now()},
			{ID: "emp-3", CompanyID: "comp-2", FullName: "C", HireDate: time.Now()},
		},
	}
	svc := newService(&fakeUserRepo{byEmail: map[string]user.User{}}, employeeRepo)
	ctx := adminContext(t, "user-admin", "comp-1")

	results, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestGenerateEmployeeCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := generateEmployeeCode()
		assert.True(t, strings.HasPrefix(code, "EMP-"))
		assert.Len(t, code, 10)
		seen[code] = true
	}
	// Collisions in 50 draws from a 16^6 space would point at a bug
	assert.Greater(t, len(seen), 45)
}

func TestGenerateTempPassword(t *testing.T) {
	pw := generateTempPassword()
	assert.Len(t, pw, 12)
	assert.NotEqual(t, pw, generateTempPassword())
}
