package leave

import (
	"context"
	"time"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	GetByID(ctx context.Context, id string) (LeaveType, error)
	GetByName(ctx context.Context, name string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
}

// HoursSumFilter narrows the usage aggregation. StartFrom is inclusive,
// StartUntil exclusive, both matched against start_time. LeaveTypeName
// filters through the leave_types join (the annual policy aggregates by
// type name, not id).
type HoursSumFilter struct {
	EmployeeID    string
	LeaveTypeID   *string
	LeaveTypeName *string
	Statuses      []Status
	StartFrom     *time.Time
	StartUntil    *time.Time
	ExcludeID     *string
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Update(ctx context.Context, request UpdateLeaveRequestRequest) error
	Delete(ctx context.Context, id string) error

	// HasOverlapping reports whether an overlap-blocking request for the
	// employee intersects [start, end], optionally ignoring one request id.
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error)

	// SumHours totals leave_hours over the requests matched by the filter.
	SumHours(ctx context.Context, filter HoursSumFilter) (int, error)

	List(ctx context.Context, scope ListScope, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
}
