package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type WageType string

const (
	WageTypeMonthly WageType = "MONTHLY"
	WageTypeYearly  WageType = "YEARLY"
)

var ValidWageTypes = []string{
	string(WageTypeMonthly),
	string(WageTypeYearly),
}

// SalaryComponents is the earning breakdown added on top of the base amount.
type SalaryComponents struct {
	Basic     decimal.Decimal `json:"basic"`
	HRA       decimal.Decimal `json:"hra"`
	Allowance decimal.Decimal `json:"allowance"`
	Bonus     decimal.Decimal `json:"bonus"`
}

// SalaryDeductions is subtracted from base plus components.
type SalaryDeductions struct {
	PF    decimal.Decimal `json:"pf"`
	Tax   decimal.Decimal `json:"tax"`
	Other decimal.Decimal `json:"other"`
}

// SalaryRecord holds one employee's current salary structure; upserts
// replace it in place, there is no versioning.
type SalaryRecord struct {
	ID         string
	EmployeeID string
	CompanyID  string
	WageType   WageType
	BaseSalary decimal.Decimal
	Components SalaryComponents
	Deductions SalaryDeductions
	Total      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ComputeTotal returns base + sum(components) - sum(deductions). Zero-value
// fields contribute nothing; the function never touches persistence.
func ComputeTotal(base decimal.Decimal, c SalaryComponents, d SalaryDeductions) decimal.Decimal {
	earnings := base.Add(c.Basic).Add(c.HRA).Add(c.Allowance).Add(c.Bonus)
	deductions := d.PF.Add(d.Tax).Add(d.Other)
	return earnings.Sub(deductions)
}
