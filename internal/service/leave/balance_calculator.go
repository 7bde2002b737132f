package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/worklane/leave-backend-go/internal/domain/employee"
	"github.com/worklane/leave-backend-go/internal/domain/leave"
)

// menstrualDefaultCapHours applies when the leave type carries no
// configured monthly cap.
const menstrualDefaultCapHours = 8

// BalanceCalculator computes remaining entitlement per leave-type
// policy. All methods are deterministic over the repositories and the
// explicit asOf date; nothing reads the process clock.
type BalanceCalculator struct {
	leave.LeaveRequestRepository
	employee.ProfileRepository
}

func NewBalanceCalculator(leaveRequestRepository leave.LeaveRequestRepository, profileRepository employee.ProfileRepository) *BalanceCalculator {
	return &BalanceCalculator{
		LeaveRequestRepository: leaveRequestRepository,
		ProfileRepository:      profileRepository,
	}
}

// Remaining resolves the leave type's policy and returns the hours the
// employee still has as of asOf. excludeID removes one request from the
// usage aggregation, used when re-validating an edit.
func (c *BalanceCalculator) Remaining(ctx context.Context, leaveType leave.LeaveType, employeeID string, asOf time.Time, excludeID *string) (leave.Balance, error) {
	switch leaveType.Policy() {
	case leave.PolicyAnnual:
		return c.remainingAnnual(ctx, employeeID, asOf, excludeID)
	case leave.PolicyMenstrual:
		return c.remainingMenstrual(ctx, leaveType, employeeID, asOf, excludeID)
	default:
		return c.remainingGeneric(ctx, leaveType, employeeID, excludeID)
	}
}

// annualLeaveDays is the tenure table for annual leave entitlement.
// totalMonths is the full months of service, years the full years.
func annualLeaveDays(years, totalMonths int) int {
	switch {
	case totalMonths >= 6 && years < 1:
		return 3
	case years >= 1 && years < 2:
		return 7
	case years >= 2 && years < 3:
		return 10
	case years >= 3 && years < 5:
		return 14
	case years >= 5 && years < 10:
		return 15
	case years >= 10:
		return min(15+(years-10), 30)
	default:
		return 0
	}
}

// monthsOfService counts full months between hireDate and asOf.
func monthsOfService(hireDate, asOf time.Time) int {
	years := asOf.Year() - hireDate.Year()
	months := int(asOf.Month()) - int(hireDate.Month())
	totalMonths := years*12 + months

	if asOf.Day() < hireDate.Day() {
		totalMonths--
	}

	if totalMonths < 0 {
		totalMonths = 0
	}

	return totalMonths
}

// annualEntitlementHours converts the employee's tenure into this
// year's annual-leave hours. A missing profile or hire date means the
// employee is not yet entitled, which is a zero result, not an error.
func (c *BalanceCalculator) annualEntitlementHours(ctx context.Context, employeeID string, asOf time.Time) (int, error) {
	profile, err := c.ProfileRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrProfileNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get employee profile: %w", err)
	}

	if profile.HireDate == nil {
		return 0, nil
	}

	totalMonths := monthsOfService(*profile.HireDate, asOf)
	days := annualLeaveDays(totalMonths/12, totalMonths)

	return days * WorkHoursPerDay, nil
}

func (c *BalanceCalculator) remainingAnnual(ctx context.Context, employeeID string, asOf time.Time, excludeID *string) (leave.Balance, error) {
	entitlement, err := c.annualEntitlementHours(ctx, employeeID, asOf)
	if err != nil {
		return leave.Balance{}, err
	}

	yearStart := time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, asOf.Location())
	yearEnd := yearStart.AddDate(1, 0, 0)

	typeName := leave.TypeNameAnnual
	used, err := c.LeaveRequestRepository.SumHours(ctx, leave.HoursSumFilter{
		EmployeeID:    employeeID,
		LeaveTypeName: &typeName,
		Statuses:      leave.UsageStatuses(),
		StartFrom:     &yearStart,
		StartUntil:    &yearEnd,
		ExcludeID:     excludeID,
	})
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to sum annual leave usage: %w", err)
	}

	return leave.LimitedBalance(max(entitlement-used, 0)), nil
}

func (c *BalanceCalculator) remainingMenstrual(ctx context.Context, leaveType leave.LeaveType, employeeID string, asOf time.Time, excludeID *string) (leave.Balance, error) {
	capHours := menstrualDefaultCapHours
	if leaveType.TotalHours != nil {
		capHours = *leaveType.TotalHours
	}

	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	typeName := leave.TypeNameMenstrual

	approved, err := c.LeaveRequestRepository.SumHours(ctx, leave.HoursSumFilter{
		EmployeeID:    employeeID,
		LeaveTypeName: &typeName,
		Statuses:      leave.ApprovedStatuses(),
		StartFrom:     &monthStart,
		StartUntil:    &monthEnd,
	})
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to sum approved menstrual leave: %w", err)
	}

	pending, err := c.LeaveRequestRepository.SumHours(ctx, leave.HoursSumFilter{
		EmployeeID:    employeeID,
		LeaveTypeName: &typeName,
		Statuses:      []leave.Status{leave.StatusPending},
		StartFrom:     &monthStart,
		StartUntil:    &monthEnd,
		ExcludeID:     excludeID,
	})
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to sum pending menstrual leave: %w", err)
	}

	carry, err := c.menstrualCarryForward(ctx, employeeID, monthStart, capHours)
	if err != nil {
		return leave.Balance{}, err
	}

	// Allowance formula as the payroll policy states it. The carry
	// contribution is capped at the monthly cap, so the allowance never
	// exceeds cap; kept literal rather than "corrected" to cap+carry.
	allowance := min(capHours, carry+capHours)

	used := approved + pending

	return leave.LimitedBalance(max(allowance-used, 0)), nil
}

// menstrualCarryForward returns last month's usage, capped at one
// month's allowance.
func (c *BalanceCalculator) menstrualCarryForward(ctx context.Context, employeeID string, monthStart time.Time, capHours int) (int, error) {
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	typeName := leave.TypeNameMenstrual
	usedLastMonth, err := c.LeaveRequestRepository.SumHours(ctx, leave.HoursSumFilter{
		EmployeeID:    employeeID,
		LeaveTypeName: &typeName,
		Statuses:      leave.UsageStatuses(),
		StartFrom:     &lastMonthStart,
		StartUntil:    &monthStart,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to sum last month's menstrual leave: %w", err)
	}

	return min(capHours, usedLastMonth), nil
}

func (c *BalanceCalculator) remainingGeneric(ctx context.Context, leaveType leave.LeaveType, employeeID string, excludeID *string) (leave.Balance, error) {
	if leaveType.TotalHours == nil {
		return leave.UnlimitedBalance(), nil
	}

	used, err := c.LeaveRequestRepository.SumHours(ctx, leave.HoursSumFilter{
		EmployeeID:  employeeID,
		LeaveTypeID: &leaveType.ID,
		Statuses:    leave.UsageStatuses(),
		ExcludeID:   excludeID,
	})
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to sum leave usage: %w", err)
	}

	return leave.LimitedBalance(max(*leaveType.TotalHours-used, 0)), nil
}
