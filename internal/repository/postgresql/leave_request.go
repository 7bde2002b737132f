package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/leave-backend-go/internal/domain/leave"
	"github.com/worklane/leave-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id,
			start_time, end_time, leave_hours,
			reason, status, attachment_url,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5,
			$6, $7, $8,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveTypeID,
		request.StartTime, request.EndTime, request.LeaveHours,
		request.Reason, request.Status, request.AttachmentURL,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to insert leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id,
			   lr.start_time, lr.end_time, lr.leave_hours,
			   lr.reason, lr.status, lr.rejection_reason, lr.attachment_url,
			   lr.created_at, lr.updated_at,
			   lt.name as leave_type_name,
			   ep.full_name as employee_name
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		JOIN employee_profiles ep ON lr.employee_id = ep.employee_id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	var leaveTypeName, employeeName string

	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveTypeID,
		&req.StartTime, &req.EndTime, &req.LeaveHours,
		&req.Reason, &req.Status, &req.RejectionReason, &req.AttachmentURL,
		&req.CreatedAt, &req.UpdatedAt,
		&leaveTypeName, &employeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	req.LeaveTypeName = &leaveTypeName
	req.EmployeeName = &employeeName

	return req, nil
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, request leave.UpdateLeaveRequestRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if request.LeaveTypeID != nil {
		updates = append(updates, fmt.Sprintf("leave_type_id = $%d", argIdx))
		args = append(args, *request.LeaveTypeID)
		argIdx++
	}
	if request.StartTime != nil {
		updates = append(updates, fmt.Sprintf("start_time = $%d", argIdx))
		args = append(args, *request.StartTime)
		argIdx++
	}
	if request.EndTime != nil {
		updates = append(updates, fmt.Sprintf("end_time = $%d", argIdx))
		args = append(args, *request.EndTime)
		argIdx++
	}
	if request.LeaveHours != nil {
		updates = append(updates, fmt.Sprintf("leave_hours = $%d", argIdx))
		args = append(args, *request.LeaveHours)
		argIdx++
	}
	if request.Reason != nil {
		updates = append(updates, fmt.Sprintf("reason = $%d", argIdx))
		args = append(args, *request.Reason)
		argIdx++
	}
	if request.Status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *request.Status)
		argIdx++
	}
	if request.RejectionReason != nil {
		updates = append(updates, fmt.Sprintf("rejection_reason = $%d", argIdx))
		args = append(args, *request.RejectionReason)
		argIdx++
	}
	if request.AttachmentURL != nil {
		updates = append(updates, fmt.Sprintf("attachment_url = $%d", argIdx))
		args = append(args, *request.AttachmentURL)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for leave request update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, request.ID)

	sql := "UPDATE leave_requests SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to update leave request with id %s: %w", request.ID, err)
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM leave_requests
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// HasOverlapping implements leave.LeaveRequestRepository. Only pending
// and supervisor-approved requests block a new window.
func (r *leaveRequestRepositoryImpl) HasOverlapping(
	ctx context.Context,
	employeeID string,
	start, end time.Time,
	excludeID *string,
) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE employee_id = $1
			AND status = ANY($2::int[])
			AND start_time <= $4
			AND end_time >= $3
	`
	args := []interface{}{employeeID, statusInts(leave.OverlapBlockingStatuses()), start, end}

	if excludeID != nil {
		query += " AND id != $5"
		args = append(args, *excludeID)
	}
	query += ")"

	var exists bool
	err := q.QueryRow(ctx, query, args...).Scan(&exists)

	return exists, err
}

// SumHours implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) SumHours(ctx context.Context, filter leave.HoursSumFilter) (int, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		WHERE lr.employee_id = $1
	`
	args := []interface{}{filter.EmployeeID}
	argIdx := 2

	if filter.LeaveTypeID != nil {
		baseQuery += fmt.Sprintf(" AND lr.leave_type_id = $%d", argIdx)
		args = append(args, *filter.LeaveTypeID)
		argIdx++
	}

	if filter.LeaveTypeName != nil {
		baseQuery += fmt.Sprintf(" AND lt.name = $%d", argIdx)
		args = append(args, *filter.LeaveTypeName)
		argIdx++
	}

	if len(filter.Statuses) > 0 {
		baseQuery += fmt.Sprintf(" AND lr.status = ANY($%d::int[])", argIdx)
		args = append(args, statusInts(filter.Statuses))
		argIdx++
	}

	if filter.StartFrom != nil {
		baseQuery += fmt.Sprintf(" AND lr.start_time >= $%d", argIdx)
		args = append(args, *filter.StartFrom)
		argIdx++
	}

	if filter.StartUntil != nil {
		baseQuery += fmt.Sprintf(" AND lr.start_time < $%d", argIdx)
		args = append(args, *filter.StartUntil)
		argIdx++
	}

	if filter.ExcludeID != nil {
		baseQuery += fmt.Sprintf(" AND lr.id != $%d", argIdx)
		args = append(args, *filter.ExcludeID)
		argIdx++
	}

	query := "SELECT COALESCE(SUM(lr.leave_hours), 0) " + baseQuery

	var total int
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum leave hours: %w", err)
	}

	return total, nil
}

// List implements leave.LeaveRequestRepository. Results follow the
// scope's fixed status sequence, then creation time ascending, matching
// the original views.
func (r *leaveRequestRepositoryImpl) List(
	ctx context.Context,
	scope leave.ListScope,
	filter leave.LeaveRequestFilter,
) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		JOIN employee_profiles ep ON lr.employee_id = ep.employee_id
	`

	whereClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	// Inclusive overlap against the requested window.
	if filter.StartDate != nil && filter.EndDate != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.start_time <= $%d AND lr.end_time >= $%d", argIdx, argIdx+1))
		args = append(args, *filter.EndDate, *filter.StartDate)
		argIdx += 2
	}

	if filter.LeaveTypeID != nil && *filter.LeaveTypeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.leave_type_id = $%d", argIdx))
		args = append(args, *filter.LeaveTypeID)
		argIdx++
	}

	if filter.Status != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("ep.department_id = $%d", argIdx))
		args = append(args, *filter.DepartmentID)
		argIdx++
	}

	if len(whereClauses) > 0 {
		baseQuery += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	countQuery := "SELECT COUNT(*) " + baseQuery
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	selectQuery := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id,
			   lr.start_time, lr.end_time, lr.leave_hours,
			   lr.reason, lr.status, lr.rejection_reason, lr.attachment_url,
			   lr.created_at, lr.updated_at,
			   lt.name as leave_type_name,
			   ep.full_name as employee_name
	` + baseQuery

	selectQuery += fmt.Sprintf(" ORDER BY %s, lr.created_at ASC", statusOrderClause(scope))

	offset := (filter.Page - 1) * filter.Limit
	selectQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest

	for rows.Next() {
		var req leave.LeaveRequest
		var leaveTypeName, employeeName string

		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveTypeID,
			&req.StartTime, &req.EndTime, &req.LeaveHours,
			&req.Reason, &req.Status, &req.RejectionReason, &req.AttachmentURL,
			&req.CreatedAt, &req.UpdatedAt,
			&leaveTypeName, &employeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}

		req.LeaveTypeName = &leaveTypeName
		req.EmployeeName = &employeeName
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, total, nil
}

// statusOrderClause renders the scope's status sequence as an
// array_position ordering (the Postgres equivalent of MySQL FIELD()).
// Status values are compile-time constants, never user input.
func statusOrderClause(scope leave.ListScope) string {
	order := leave.StatusOrder(scope)
	parts := make([]string, len(order))
	for i, s := range order {
		parts[i] = fmt.Sprintf("%d", int(s))
	}
	return fmt.Sprintf("array_position(ARRAY[%s], lr.status::int)", strings.Join(parts, ","))
}

func statusInts(statuses []leave.Status) []int {
	out := make([]int, len(statuses))
	for i, s := range statuses {
		out[i] = int(s)
	}
	return out
}
