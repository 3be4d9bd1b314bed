package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/attendance"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository. The unique index on
// (employee_id, date) turns a concurrent double check-in into a constraint
// violation, reported as ErrAlreadyCheckedIn.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, company_id, date, check_in, check_out,
								 work_hours, overtime_hours, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, company_id, date, check_in, check_out,
				  work_hours, overtime_hours, status, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.CompanyID,
		att.Date,
		att.CheckIn,
		att.CheckOut,
		att.WorkHours,
		att.OvertimeHours,
		att.Status,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.CompanyID,
		&created.Date,
		&created.CheckIn,
		&created.CheckOut,
		&created.WorkHours,
		&created.OvertimeHours,
		&created.Status,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, err
	}

	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, check_in, check_out,
			   work_hours, overtime_hours, status, created_at, updated_at
		FROM attendances
		WHERE id = $1 AND company_id = $2
	`

	var found attendance.Attendance
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&found.ID,
		&found.EmployeeID,
		&found.CompanyID,
		&found.Date,
		&found.CheckIn,
		&found.CheckOut,
		&found.WorkHours,
		&found.OvertimeHours,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return found, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, check_in, check_out,
			   work_hours, overtime_hours, status, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2 AND company_id = $3
	`

	var found attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date, companyID).Scan(
		&found.ID,
		&found.EmployeeID,
		&found.CompanyID,
		&found.Date,
		&found.CheckIn,
		&found.CheckOut,
		&found.WorkHours,
		&found.OvertimeHours,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &found, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_in = $1, check_out = $2, work_hours = $3, overtime_hours = $4,
			status = $5, updated_at = NOW()
		WHERE id = $6 AND company_id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		att.CheckIn,
		att.CheckOut,
		att.WorkHours,
		att.OvertimeHours,
		att.Status,
		att.ID,
		att.CompanyID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return err
	}

	return nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, check_in, check_out,
			   work_hours, overtime_hours, status, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND company_id = $2 AND date >= $3 AND date <= $4
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendances(rows)
}

// ListByCompanyAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.company_id, a.date, a.check_in, a.check_out,
			   a.work_hours, a.overtime_hours, a.status, a.created_at, a.updated_at,
			   e.full_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.company_id = $1 AND a.date = $2
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, companyID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		var employeeName string
		if err := rows.Scan(
			&att.ID,
			&att.EmployeeID,
			&att.CompanyID,
			&att.Date,
			&att.CheckIn,
			&att.CheckOut,
			&att.WorkHours,
			&att.OvertimeHours,
			&att.Status,
			&att.CreatedAt,
			&att.UpdatedAt,
			&employeeName,
		); err != nil {
			return nil, err
		}
		att.EmployeeName = &employeeName
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func scanAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID,
			&att.EmployeeID,
			&att.CompanyID,
			&att.Date,
			&att.CheckIn,
			&att.CheckOut,
			&att.WorkHours,
			&att.OvertimeHours,
			&att.Status,
			&att.CreatedAt,
			&att.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
