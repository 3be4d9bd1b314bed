package employee

import "time"

type Employee struct {
	ID           string
	UserID       string
	CompanyID    string
	EmployeeCode string
	FullName     string
	Position     *string
	PhoneNumber  *string
	HireDate     time.Time
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	Email *string
}

type Status string

const (
	StatusActive   Status = "active"
	StatusResigned Status = "resigned"
)
