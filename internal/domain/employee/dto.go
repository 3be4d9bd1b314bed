package employee

import (
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/validator"
)

type OnboardEmployeeRequest struct {
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Position    *string `json:"position,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	HireDate    string  `json:"hire_date"` // YYYY-MM-DD, defaults to today
}

func (r *OnboardEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if r.HireDate != "" {
		if _, ok := validator.IsValidDate(r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	Email        *string `json:"email,omitempty"`
	Position     *string `json:"position,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	HireDate     string  `json:"hire_date"`
	Status       string  `json:"status"`
}

// OnboardEmployeeResponse carries the new profile. The generated temporary
// password travels only through the credentials email, never this response.
type OnboardEmployeeResponse struct {
	Employee EmployeeResponse `json:"employee"`
}
