package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/leave-backend-go/internal/domain/employee"
	"github.com/worklane/leave-backend-go/internal/pkg/database"
)

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) employee.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

func (r *profileRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.EmployeeProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, full_name, department_id, gender, hire_date, created_at, updated_at
		FROM employee_profiles
		WHERE employee_id = $1
	`

	var profile employee.EmployeeProfile
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&profile.EmployeeID, &profile.FullName, &profile.DepartmentID,
		&profile.Gender, &profile.HireDate,
		&profile.CreatedAt, &profile.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.EmployeeProfile{}, employee.ErrProfileNotFound
		}
		return employee.EmployeeProfile{}, err
	}

	return profile, nil
}
