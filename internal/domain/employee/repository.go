package employee

import "context"

// ProfileRepository - interface for employee_profiles table
type ProfileRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeProfile, error)
}
