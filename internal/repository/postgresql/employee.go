package postgresql

import (
	"context"
	"errors"

	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/employee"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (user_id, company_id, employee_code, full_name, position, phone_number, hire_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, company_id, employee_code, full_name, position, phone_number,
				  hire_date, status, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.UserID,
		newEmployee.CompanyID,
		newEmployee.EmployeeCode,
		newEmployee.FullName,
		newEmployee.Position,
		newEmployee.PhoneNumber,
		newEmployee.HireDate,
		newEmployee.Status,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.CompanyID,
		&created.EmployeeCode,
		&created.FullName,
		&created.Position,
		&created.PhoneNumber,
		&created.HireDate,
		&created.Status,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.company_id, e.employee_code, e.full_name, e.position,
			   e.phone_number, e.hire_date, e.status, e.created_at, e.updated_at, u.email
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1 AND e.company_id = $2
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&found.ID,
		&found.UserID,
		&found.CompanyID,
		&found.EmployeeCode,
		&found.FullName,
		&found.Position,
		&found.PhoneNumber,
		&found.HireDate,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.Email,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.company_id, e.employee_code, e.full_name, e.position,
			   e.phone_number, e.hire_date, e.status, e.created_at, e.updated_at, u.email
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.user_id = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, userID).Scan(
		&found.ID,
		&found.UserID,
		&found.CompanyID,
		&found.EmployeeCode,
		&found.FullName,
		&found.Position,
		&found.PhoneNumber,
		&found.HireDate,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.Email,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// ListByCompany implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.company_id, e.employee_code, e.full_name, e.position,
			   e.phone_number, e.hire_date, e.status, e.created_at, e.updated_at, u.email
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.company_id = $1
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.CompanyID,
			&e.EmployeeCode,
			&e.FullName,
			&e.Position,
			&e.PhoneNumber,
			&e.HireDate,
			&e.Status,
			&e.CreatedAt,
			&e.UpdatedAt,
			&e.Email,
		); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
