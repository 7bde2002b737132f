package leave

import (
	"time"
)

// Status follows the review workflow used by the surrounding system.
// The engine only cares about two derived sets: statuses that consume
// balance and statuses that block double-booking.
type Status int

const (
	StatusPending            Status = 0
	StatusSupervisorApproved Status = 1
	StatusRejected           Status = 2
	StatusHRApproved         Status = 3
	StatusCancelled          Status = 4
)

// UsageStatuses are the statuses whose hours count against an
// employee's remaining balance.
func UsageStatuses() []Status {
	return []Status{StatusPending, StatusSupervisorApproved, StatusHRApproved}
}

// OverlapBlockingStatuses are the statuses that make an existing request
// conflict with a new one over the same window.
func OverlapBlockingStatuses() []Status {
	return []Status{StatusPending, StatusSupervisorApproved}
}

// ApprovedStatuses are the statuses the menstrual-leave policy counts as
// firm usage within the current month.
func ApprovedStatuses() []Status {
	return []Status{StatusSupervisorApproved, StatusHRApproved}
}

// PolicyKind selects which balance calculation applies to a leave type.
type PolicyKind string

const (
	PolicyAnnual    PolicyKind = "annual"
	PolicyMenstrual PolicyKind = "menstrual"
	PolicyGeneric   PolicyKind = "generic"
)

// Policy keys are matched by leave-type name, as configured in the
// leave_types table.
const (
	TypeNameAnnual    = "Annual Leave"
	TypeNameMenstrual = "Menstrual Leave"
)

// LeaveType entity. Read-only reference data from the engine's
// perspective; TotalHours is the optional per-employee cap for generic
// types and the monthly cap for menstrual leave.
type LeaveType struct {
	ID          string
	Name        string
	TotalHours  *int
	Description *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Policy resolves the balance policy for this leave type.
func (lt LeaveType) Policy() PolicyKind {
	switch lt.Name {
	case TypeNameAnnual:
		return PolicyAnnual
	case TypeNameMenstrual:
		return PolicyMenstrual
	default:
		return PolicyGeneric
	}
}

// LeaveRequest entity
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartTime time.Time
	EndTime   time.Time

	// LeaveHours is the ceiling of the business hours covered by
	// [StartTime, EndTime]; always positive once admitted.
	LeaveHours int

	Reason          string
	Status          Status
	RejectionReason *string
	AttachmentURL   *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	LeaveTypeName *string
	EmployeeName  *string
}

// Balance is the remaining entitlement under a policy. Unlimited marks
// leave types with no configured cap; Hours is meaningless when set.
type Balance struct {
	Hours     int
	Unlimited bool
}

func LimitedBalance(hours int) Balance {
	return Balance{Hours: hours}
}

func UnlimitedBalance() Balance {
	return Balance{Unlimited: true}
}

// ListScope identifies which view a list query serves; it decides the
// status ordering of the result.
type ListScope string

const (
	ScopeSelf       ListScope = "self"
	ScopeDepartment ListScope = "department"
	ScopeCompany    ListScope = "company"
)

// StatusOrder returns the fixed status sequence for a view scope.
// Self and department views surface pending requests first; the
// company-wide view puts supervisor-approved requests ahead of them.
func StatusOrder(scope ListScope) []Status {
	if scope == ScopeCompany {
		return []Status{StatusSupervisorApproved, StatusPending, StatusHRApproved, StatusRejected, StatusCancelled}
	}
	return []Status{StatusPending, StatusSupervisorApproved, StatusHRApproved, StatusRejected, StatusCancelled}
}

// Overlaps reports whether the two inclusive ranges intersect. The SQL
// predicates in the postgresql repository (HasOverlapping and the List
// date filter) express this same test and must stay in step with it.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
