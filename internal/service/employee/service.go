package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/company"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/employee"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/user"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/database"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/email"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const onboardCodeAttempts = 3

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
	company.CompanyRepository
	dispatcher *email.Dispatcher
	loc        *time.Location
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	userRepository user.UserRepository,
	companyRepository company.CompanyRepository,
	dispatcher *email.Dispatcher,
	loc *time.Location,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		UserRepository:     userRepository,
		CompanyRepository:  companyRepository,
		dispatcher:         dispatcher,
		loc:                loc,
	}
}

// Onboard implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Onboard(ctx context.Context, req employee.OnboardEmployeeRequest) (employee.OnboardEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.OnboardEmployeeResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.OnboardEmployeeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return employee.OnboardEmployeeResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	_, err = s.UserRepository.GetByEmail(ctx, req.Email)
	if err == nil {
		return employee.OnboardEmployeeResponse{}, user.ErrEmailExists
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return employee.OnboardEmployeeResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hireDate := time.Now().In(s.loc)
	if req.HireDate != "" {
		hireDate, _ = time.ParseInLocation("2006-01-02", req.HireDate, s.loc)
	}

	tempPassword := generateTempPassword()
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return employee.OnboardEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	var created employee.Employee
	for attempt := 0; attempt < onboardCodeAttempts; attempt++ {
		code := generateEmployeeCode()

		err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)

			newUser, err := s.UserRepository.Create(txCtx, user.User{
				CompanyID:    companyID,
				Email:        req.Email,
				PasswordHash: &passwordHash,
				Role:         user.RoleEmployee,
			})
			if err != nil {
				return err
			}

			created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
				UserID:       newUser.ID,
				CompanyID:    companyID,
				EmployeeCode: code,
				FullName:     req.FullName,
				Position:     req.Position,
				PhoneNumber:  req.PhoneNumber,
				HireDate:     hireDate,
				Status:       employee.StatusActive,
			})
			return err
		})
		if !errors.Is(err, employee.ErrEmployeeCodeExists) {
			break
		}
	}
	if err != nil {
		return employee.OnboardEmployeeResponse{}, err
	}

	companyName := ""
	if companyData, cErr := s.CompanyRepository.GetByID(ctx, companyID); cErr == nil {
		companyName = companyData.Name
	}
	s.dispatcher.DispatchCredentials(req.Email, req.FullName, companyName, req.Email, created.EmployeeCode, tempPassword)

	created.Email = &req.Email
	return employee.OnboardEmployeeResponse{Employee: toResponse(created)}, nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return nil, fmt.Errorf("company_id claim is missing or invalid")
	}

	employees, err := s.EmployeeRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}
	return responses, nil
}

// GetMe implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMe(ctx context.Context) (employee.EmployeeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return employee.EmployeeResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	found, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrNoEmployeeProfile
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee profile: %w", err)
	}

	return toResponse(found), nil
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Email:        e.Email,
		Position:     e.Position,
		PhoneNumber:  e.PhoneNumber,
		HireDate:     e.HireDate.Format("2006-01-02"),
		Status:       string(e.Status),
	}
}

func generateEmployeeCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "EMP-" + raw[:6]
}

func generateTempPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
