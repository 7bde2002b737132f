package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/worklane/leave-backend-go/internal/domain/leave"
)

func day(d int) time.Time {
	return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{"disjoint before", day(1), day(2), day(3), day(4), false},
		{"disjoint after", day(3), day(4), day(1), day(2), false},
		{"identical", day(1), day(2), day(1), day(2), true},
		{"contained", day(2), day(3), day(1), day(4), true},
		{"partial overlap", day(1), day(3), day(2), day(4), true},
		{"touching endpoints", day(1), day(2), day(2), day(3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, leave.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestStatusOrder(t *testing.T) {
	assert.Equal(t,
		[]leave.Status{leave.StatusPending, leave.StatusSupervisorApproved, leave.StatusHRApproved, leave.StatusRejected, leave.StatusCancelled},
		leave.StatusOrder(leave.ScopeSelf))
	assert.Equal(t,
		[]leave.Status{leave.StatusPending, leave.StatusSupervisorApproved, leave.StatusHRApproved, leave.StatusRejected, leave.StatusCancelled},
		leave.StatusOrder(leave.ScopeDepartment))
	assert.Equal(t,
		[]leave.Status{leave.StatusSupervisorApproved, leave.StatusPending, leave.StatusHRApproved, leave.StatusRejected, leave.StatusCancelled},
		leave.StatusOrder(leave.ScopeCompany))
}

func TestLeaveTypePolicy(t *testing.T) {
	assert.Equal(t, leave.PolicyAnnual, leave.LeaveType{Name: "Annual Leave"}.Policy())
	assert.Equal(t, leave.PolicyMenstrual, leave.LeaveType{Name: "Menstrual Leave"}.Policy())
	assert.Equal(t, leave.PolicyGeneric, leave.LeaveType{Name: "Sick Leave"}.Policy())
}
