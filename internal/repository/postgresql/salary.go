package postgresql

import (
	"context"

	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/payroll"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) payroll.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

// Upsert implements payroll.SalaryRepository. One row per employee; a second
// upsert replaces the structure in place.
func (r *salaryRepositoryImpl) Upsert(ctx context.Context, record *payroll.SalaryRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_records (employee_id, company_id, wage_type, base_salary,
									comp_basic, comp_hra, comp_allowance, comp_bonus,
									ded_pf, ded_tax, ded_other, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (employee_id) DO UPDATE
		SET wage_type = EXCLUDED.wage_type,
			base_salary = EXCLUDED.base_salary,
			comp_basic = EXCLUDED.comp_basic,
			comp_hra = EXCLUDED.comp_hra,
			comp_allowance = EXCLUDED.comp_allowance,
			comp_bonus = EXCLUDED.comp_bonus,
			ded_pf = EXCLUDED.ded_pf,
			ded_tax = EXCLUDED.ded_tax,
			ded_other = EXCLUDED.ded_other,
			total = EXCLUDED.total,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.CompanyID,
		record.WageType,
		record.BaseSalary,
		record.Components.Basic,
		record.Components.HRA,
		record.Components.Allowance,
		record.Components.Bonus,
		record.Deductions.PF,
		record.Deductions.Tax,
		record.Deductions.Other,
		record.Total,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByEmployee implements payroll.SalaryRepository.
func (r *salaryRepositoryImpl) GetByEmployee(ctx context.Context, employeeID, companyID string) (*payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, wage_type, base_salary,
			   comp_basic, comp_hra, comp_allowance, comp_bonus,
			   ded_pf, ded_tax, ded_other, total, created_at, updated_at
		FROM salary_records
		WHERE employee_id = $1 AND company_id = $2
	`

	var found payroll.SalaryRecord
	err := q.QueryRow(ctx, query, employeeID, companyID).Scan(
		&found.ID,
		&found.EmployeeID,
		&found.CompanyID,
		&found.WageType,
		&found.BaseSalary,
		&found.Components.Basic,
		&found.Components.HRA,
		&found.Components.Allowance,
		&found.Components.Bonus,
		&found.Deductions.PF,
		&found.Deductions.Tax,
		&found.Deductions.Other,
		&found.Total,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrSalaryNotFound
		}
		return nil, err
	}

	return &found, nil
}
