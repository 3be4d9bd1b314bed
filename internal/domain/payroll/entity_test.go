package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name       string
		base       decimal.Decimal
		components SalaryComponents
		deductions SalaryDeductions
		want       string
	}{
		{
			name: "components minus tax",
			base: d("0"),
			components: SalaryComponents{
				Basic:     d("25000"),
				HRA:       d("12500"),
				Allowance: d("7187.5"),
				Bonus:     d("2092.5"),
			},
			deductions: SalaryDeductions{Tax: d("200")},
			want:       "46580",
		},
		{
			name: "base only",
			base: d("50000"),
			want: "50000",
		},
		{
			name:       "deductions can exceed earnings",
			base:       d("1000"),
			deductions: SalaryDeductions{PF: d("600"), Tax: d("600")},
			want:       "-200",
		},
		{
			name:       "fractional amounts keep exact arithmetic",
			base:       d("0.1"),
			components: SalaryComponents{Basic: d("0.2")},
			want:       "0.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(tt.base, tt.components, tt.deductions)
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}
