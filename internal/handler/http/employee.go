package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/domain/employee"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/handler/http/response"
)

type EmployeeHandler interface {
	Onboard(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Onboard implements EmployeeHandler - admin creates a profile with
// generated credentials
func (h *employeeHandlerImpl) Onboard(w http.ResponseWriter, r *http.Request) {
	var req employee.OnboardEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.Onboard(r.Context(), req)
	if err != nil {
		slog.Error("Onboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee onboarded successfully", result)
}

// List implements EmployeeHandler
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetMe implements EmployeeHandler
func (h *employeeHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetMe(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
