package leave

import (
	"context"
	"time"
)

type LeaveService interface {
	// Request
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveRequest, error)
	Edit(ctx context.Context, req UpdateLeaveRequestRequest) (LeaveRequest, error)
	Delete(ctx context.Context, requestID, employeeID string) error

	// Balance. leaveTypeRef is a leave-type id or a leave-type name.
	RemainingBalance(ctx context.Context, leaveTypeRef, employeeID string, asOf time.Time, excludeID *string) (Balance, error)

	// Listing
	List(ctx context.Context, scope ListScope, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	ListTypes(ctx context.Context) ([]LeaveType, error)
}
