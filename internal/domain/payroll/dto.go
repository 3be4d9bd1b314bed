package payroll

import (
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertSalaryRequest struct {
	EmployeeID string           `json:"-"`
	WageType   string           `json:"wage_type"`
	BaseSalary decimal.Decimal  `json:"base_salary"`
	Components SalaryComponents `json:"components"`
	Deductions SalaryDeductions `json:"deductions"`
}

func (r *UpsertSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.WageType, ValidWageTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "wage_type",
			Message: "wage_type must be MONTHLY or YEARLY",
		})
	}

	amounts := map[string]decimal.Decimal{
		"base_salary":          r.BaseSalary,
		"components.basic":     r.Components.Basic,
		"components.hra":       r.Components.HRA,
		"components.allowance": r.Components.Allowance,
		"components.bonus":     r.Components.Bonus,
		"deductions.pf":        r.Deductions.PF,
		"deductions.tax":       r.Deductions.Tax,
		"deductions.other":     r.Deductions.Other,
	}
	for field, amount := range amounts {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryResponse struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employee_id"`
	WageType   string           `json:"wage_type"`
	BaseSalary decimal.Decimal  `json:"base_salary"`
	Components SalaryComponents `json:"components"`
	Deductions SalaryDeductions `json:"deductions"`
	Total      decimal.Decimal  `json:"total"`
}

// PayableDaysRequest selects one employee and calendar month (admin).
type PayableDaysRequest struct {
	EmployeeID string
	Month      int
	Year       int
}

func (r *PayableDaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PayableDaysResponse is advisory input for payslip generation; it never
// mutates the salary record itself.
type PayableDaysResponse struct {
	EmployeeID  string  `json:"employee_id"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	PresentDays int     `json:"present_days"`
	HalfDays    int     `json:"half_days"`
	LeaveDays   int     `json:"leave_days"`
	AbsentDays  int     `json:"absent_days"`
	PayableDays float64 `json:"payable_days"`
	UnpaidDays  int     `json:"unpaid_days"`
	PayslipHint string  `json:"payslip_hint"`
}
