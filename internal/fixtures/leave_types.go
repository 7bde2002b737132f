package fixtures

import (
	"github.com/worklane/leave-backend-go/internal/domain/leave"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

// DefaultLeaveTypes returns the leave types a fresh installation starts
// with. Annual and menstrual leave carry their own balance policies, so
// only the menstrual monthly cap is configured here; the annual
// entitlement comes from tenure.
func DefaultLeaveTypes() []leave.LeaveType {
	return []leave.LeaveType{
		{
			Name:        leave.TypeNameAnnual,
			Description: strPtr("Annual leave, entitlement by years of service"),
		},
		{
			Name:        leave.TypeNameMenstrual,
			TotalHours:  intPtr(8),
			Description: strPtr("Menstrual leave, monthly allowance with carry-forward"),
		},
		{
			Name:        "Sick Leave",
			Description: strPtr("Sick leave, doctor's certificate required beyond one day"),
		},
		{
			Name:        "Marriage Leave",
			TotalHours:  intPtr(3 * 8),
			Description: strPtr("Leave for the employee's own wedding"),
		},
		{
			Name:        "Maternity Leave",
			TotalHours:  intPtr(90 * 8),
			Description: strPtr("Maternity leave for female employees"),
		},
		{
			Name:        "Paternity Leave",
			TotalHours:  intPtr(2 * 8),
			Description: strPtr("Paternity leave when the employee's wife gives birth"),
		},
		{
			Name:        "Bereavement Leave",
			TotalHours:  intPtr(2 * 8),
			Description: strPtr("Leave for the death of an immediate family member"),
		},
		{
			Name:        "Unpaid Leave",
			Description: strPtr("Unpaid leave for personal matters"),
		},
	}
}
