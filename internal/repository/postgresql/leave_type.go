package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/leave-backend-go/internal/domain/leave"
	"github.com/worklane/leave-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

func (l *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, total_hours, description, created_at, updated_at
		FROM leave_types
		WHERE id = $1
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, id).Scan(
		&lt.ID, &lt.Name, &lt.TotalHours, &lt.Description,
		&lt.CreatedAt, &lt.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}

	return lt, nil
}

// GetByName implements leave.LeaveTypeRepository.
func (l *leaveTypeRepositoryImpl) GetByName(ctx context.Context, name string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, total_hours, description, created_at, updated_at
		FROM leave_types
		WHERE name = $1
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, name).Scan(
		&lt.ID, &lt.Name, &lt.TotalHours, &lt.Description,
		&lt.CreatedAt, &lt.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}

	return lt, nil
}

// SeedLeaveTypes inserts the given leave types, skipping any name that
// already exists. Used by the seed command to bootstrap a database.
func SeedLeaveTypes(ctx context.Context, db *database.DB, types []leave.LeaveType) error {
	query := `
		INSERT INTO leave_types (id, name, total_hours, description)
		VALUES (uuidv7(), $1, $2, $3)
		ON CONFLICT (name) DO NOTHING
	`

	for _, lt := range types {
		if _, err := db.Pool.Exec(ctx, query, lt.Name, lt.TotalHours, lt.Description); err != nil {
			return fmt.Errorf("failed to seed leave type %q: %w", lt.Name, err)
		}
	}

	return nil
}

func (l *leaveTypeRepositoryImpl) List(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, total_hours, description, created_at, updated_at
		FROM leave_types
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave types: %w", err)
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		var lt leave.LeaveType
		err := rows.Scan(
			&lt.ID, &lt.Name, &lt.TotalHours, &lt.Description,
			&lt.CreatedAt, &lt.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		types = append(types, lt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return types, nil
}
