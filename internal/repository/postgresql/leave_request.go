package postgresql

import (
	"context"
	"time"

	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/leave"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, company_id, leave_type, start_date, end_date,
									total_days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, company_id, leave_type, start_date, end_date, total_days,
				  reason, status, admin_comment, decided_by, decided_at, created_at, updated_at
	`

	var created leave.LeaveRequest
	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.CompanyID,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.TotalDays,
		req.Reason,
		req.Status,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.CompanyID,
		&created.Type,
		&created.StartDate,
		&created.EndDate,
		&created.TotalDays,
		&created.Reason,
		&created.Status,
		&created.AdminComment,
		&created.DecidedBy,
		&created.DecidedAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.company_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.total_days, lr.reason, lr.status, lr.admin_comment, lr.decided_by, lr.decided_at,
			   lr.created_at, lr.updated_at, e.full_name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1 AND lr.company_id = $2
	`

	var found leave.LeaveRequest
	var employeeName string
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&found.ID,
		&found.EmployeeID,
		&found.CompanyID,
		&found.Type,
		&found.StartDate,
		&found.EndDate,
		&found.TotalDays,
		&found.Reason,
		&found.Status,
		&found.AdminComment,
		&found.DecidedBy,
		&found.DecidedAt,
		&found.CreatedAt,
		&found.UpdatedAt,
		&employeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	found.EmployeeName = &employeeName

	return found, nil
}

// UpdateDecision implements leave.LeaveRequestRepository. The status guard in
// the WHERE clause makes the pending -> decided move one shot even under
// concurrent admins.
func (r *leaveRequestRepositoryImpl) UpdateDecision(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, admin_comment = $2, decided_by = $3, decided_at = $4, updated_at = NOW()
		WHERE id = $5 AND company_id = $6 AND status = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.Status,
		req.AdminComment,
		req.DecidedBy,
		req.DecidedAt,
		req.ID,
		req.CompanyID,
		leave.LeaveRequestStatusPending,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrAlreadyProcessed
		}
		return err
	}

	return nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.company_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.total_days, lr.reason, lr.status, lr.admin_comment, lr.decided_by, lr.decided_at,
			   lr.created_at, lr.updated_at, e.full_name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.employee_id = $1 AND lr.company_id = $2
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// ListByCompany implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.company_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.total_days, lr.reason, lr.status, lr.admin_comment, lr.decided_by, lr.decided_at,
			   lr.created_at, lr.updated_at, e.full_name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.company_id = $1
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// SumApprovedDaysByType implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) SumApprovedDaysByType(ctx context.Context, employeeID string, year int, companyID string) (map[leave.LeaveType]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT leave_type, COALESCE(SUM(total_days), 0)
		FROM leave_requests
		WHERE employee_id = $1 AND company_id = $2 AND status = $3
		  AND EXTRACT(YEAR FROM start_date) = $4
		GROUP BY leave_type
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, leave.LeaveRequestStatusApproved, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	used := make(map[leave.LeaveType]int)
	for rows.Next() {
		var leaveType leave.LeaveType
		var days int
		if err := rows.Scan(&leaveType, &days); err != nil {
			return nil, err
		}
		used[leaveType] = days
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return used, nil
}

// ApprovedLeaveForDay implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ApprovedLeaveForDay(ctx context.Context, employeeID string, date time.Time, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1 AND company_id = $2 AND status = $3
			  AND start_date <= $4 AND end_date >= $4
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, companyID, leave.LeaveRequestStatusApproved, date).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func scanLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		var employeeName string
		if err := rows.Scan(
			&req.ID,
			&req.EmployeeID,
			&req.CompanyID,
			&req.Type,
			&req.StartDate,
			&req.EndDate,
			&req.TotalDays,
			&req.Reason,
			&req.Status,
			&req.AdminComment,
			&req.DecidedBy,
			&req.DecidedAt,
			&req.CreatedAt,
			&req.UpdatedAt,
			&employeeName,
		); err != nil {
			return nil, err
		}
		req.EmployeeName = &employeeName
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}
