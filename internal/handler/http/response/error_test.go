package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/attendance"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/auth"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/employee"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/leave"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/payroll"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/user"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusBadRequest},
		{"not checked in", attendance.ErrNotCheckedIn, http.StatusBadRequest},
		{"already checked out", attendance.ErrAlreadyCheckedOut, http.StatusBadRequest},
		{"check-out before in", attendance.ErrCheckOutBeforeIn, http.StatusBadRequest},
		{"attendance not found", attendance.ErrAttendanceNotFound, http.StatusNotFound},
		{"leave already processed", leave.ErrAlreadyProcessed, http.StatusBadRequest},
		{"leave not found", leave.ErrLeaveRequestNotFound, http.StatusNotFound},
		{"invalid date range", leave.ErrInvalidDateRange, http.StatusBadRequest},
		{"comment required", leave.ErrCommentRequired, http.StatusBadRequest},
		{"no employee profile", employee.ErrNoEmployeeProfile, http.StatusNotFound},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"salary not found", payroll.ErrSalaryNotFound, http.StatusNotFound},
		{"foreign salary", payroll.ErrForbiddenEmployee, http.StatusForbidden},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"admin required", user.ErrAdminPrivilegeRequired, http.StatusForbidden},
		{"email exists", user.ErrEmailExists, http.StatusConflict},
		{"validation", validator.ValidationErrors{{Field: "email", Message: "required"}}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
