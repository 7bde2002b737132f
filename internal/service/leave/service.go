package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/worklane/leave-backend-go/internal/domain/employee"
	"github.com/worklane/leave-backend-go/internal/domain/leave"
	"github.com/worklane/leave-backend-go/internal/pkg/database"
	"github.com/worklane/leave-backend-go/internal/pkg/validator"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type LeaveServiceImpl struct {
	tx database.TxManager
	leave.LeaveTypeRepository
	leave.LeaveRequestRepository
	employee.ProfileRepository
	calculator *BalanceCalculator
}

func NewLeaveService(tx database.TxManager, leaveTypeRepository leave.LeaveTypeRepository, leaveRequestRepository leave.LeaveRequestRepository, profileRepository employee.ProfileRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:                     tx,
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveRequestRepository: leaveRequestRepository,
		ProfileRepository:      profileRepository,
		calculator:             NewBalanceCalculator(leaveRequestRepository, profileRepository),
	}
}

// Apply implements leave.LeaveService. The overlap check, hour
// computation, balance check and insert run inside one transaction so
// two concurrent submissions cannot both be admitted over the same
// window.
func (l *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	if !req.StartTime.Before(req.EndTime) {
		return leave.LeaveRequest{}, leave.ErrInvalidRange
	}

	leaveType, err := l.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	var created leave.LeaveRequest
	err = l.tx.WithTx(ctx, func(ctx context.Context) error {
		hasOverlap, err := l.LeaveRequestRepository.HasOverlapping(ctx, req.EmployeeID, req.StartTime, req.EndTime, nil)
		if err != nil {
			return fmt.Errorf("failed to check overlapping leave requests: %w", err)
		}
		if hasOverlap {
			return leave.ErrOverlapConflict
		}

		hours := BusinessHours(req.StartTime, req.EndTime)
		if hours <= 0 {
			return leave.ErrInvalidRange
		}

		remaining, err := l.calculator.Remaining(ctx, leaveType, req.EmployeeID, req.StartTime, nil)
		if err != nil {
			return err
		}
		if !remaining.Unlimited && remaining.Hours < hours {
			return leave.ErrInsufficientBalance
		}

		status := leave.StatusPending
		if req.Status != nil {
			status = *req.Status
		}

		created, err = l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
			EmployeeID:    req.EmployeeID,
			LeaveTypeID:   req.LeaveTypeID,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			LeaveHours:    hours,
			Reason:        req.Reason,
			Status:        status,
			AttachmentURL: req.AttachmentURL,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return created, nil
}

// Edit implements leave.LeaveService. Moving the window re-runs the
// full admission checks with the edited request excluded and recomputes
// the hours; other fields are passed through as-is.
func (l *LeaveServiceImpl) Edit(ctx context.Context, req leave.UpdateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	existing, err := l.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	leaveTypeID := existing.LeaveTypeID
	if req.LeaveTypeID != nil {
		leaveTypeID = *req.LeaveTypeID
	}

	movingWindow := req.StartTime != nil && req.EndTime != nil

	err = l.tx.WithTx(ctx, func(ctx context.Context) error {
		if movingWindow {
			start, end := *req.StartTime, *req.EndTime

			if !start.Before(end) {
				return leave.ErrInvalidRange
			}

			excludeID := existing.ID
			hasOverlap, err := l.LeaveRequestRepository.HasOverlapping(ctx, existing.EmployeeID, start, end, &excludeID)
			if err != nil {
				return fmt.Errorf("failed to check overlapping leave requests: %w", err)
			}
			if hasOverlap {
				return leave.ErrOverlapConflict
			}

			hours := BusinessHours(start, end)
			if hours <= 0 {
				return leave.ErrInvalidRange
			}

			leaveType, err := l.LeaveTypeRepository.GetByID(ctx, leaveTypeID)
			if err != nil {
				return err
			}

			remaining, err := l.calculator.Remaining(ctx, leaveType, existing.EmployeeID, start, &excludeID)
			if err != nil {
				return err
			}
			if !remaining.Unlimited && remaining.Hours < hours {
				return leave.ErrInsufficientBalance
			}

			req.LeaveHours = &hours
		}

		if err := l.LeaveRequestRepository.Update(ctx, req); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return l.LeaveRequestRepository.GetByID(ctx, req.ID)
}

// Delete implements leave.LeaveService. Only the owning employee may
// delete, and only while the request is still pending; everything else
// is a Forbidden, including a missing request, so callers cannot probe
// other employees' records.
func (l *LeaveServiceImpl) Delete(ctx context.Context, requestID, employeeID string) error {
	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.ErrForbidden
		}
		return fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.EmployeeID != employeeID {
		return leave.ErrForbidden
	}

	if request.Status != leave.StatusPending {
		return leave.ErrForbidden
	}

	if err := l.LeaveRequestRepository.Delete(ctx, requestID); err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}

	return nil
}

// RemainingBalance implements leave.LeaveService. The leave type may be
// referenced by id or by name; policy types are commonly addressed by
// their configured name.
func (l *LeaveServiceImpl) RemainingBalance(ctx context.Context, leaveTypeRef, employeeID string, asOf time.Time, excludeID *string) (leave.Balance, error) {
	var leaveType leave.LeaveType
	var err error

	if validator.IsValidUUID(leaveTypeRef) {
		leaveType, err = l.LeaveTypeRepository.GetByID(ctx, leaveTypeRef)
	} else {
		leaveType, err = l.LeaveTypeRepository.GetByName(ctx, leaveTypeRef)
	}
	if err != nil {
		return leave.Balance{}, err
	}

	return l.calculator.Remaining(ctx, leaveType, employeeID, asOf, excludeID)
}

// List implements leave.LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context, scope leave.ListScope, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}

	return l.LeaveRequestRepository.List(ctx, scope, filter)
}

// ListTypes implements leave.LeaveService.
func (l *LeaveServiceImpl) ListTypes(ctx context.Context) ([]leave.LeaveType, error) {
	return l.LeaveTypeRepository.List(ctx)
}
