package employee

import "time"

// EmployeeProfile is read-only reference data for the leave engine:
// tenure (hire date) feeds the annual-leave policy, department feeds
// list filtering. Gender eligibility checks stay with the caller.
type EmployeeProfile struct {
	EmployeeID   string
	FullName     string
	DepartmentID string
	Gender       Gender
	HireDate     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)
