package leave

import (
	"time"

	"github.com/worklane/leave-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmployeeID    string    `json:"employee_id"`
	LeaveTypeID   string    `json:"leave_type_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Reason        string    `json:"reason"`
	Status        *Status   `json:"status,omitempty"`
	AttachmentURL *string   `json:"attachment_url,omitempty"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	if r.StartTime.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	}

	if r.EndTime.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required",
		})
	}

	if r.Status != nil && !validator.IsValidStatus(int(*r.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be between 0 and 4",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateLeaveRequestRequest carries a partial edit; nil fields are left
// untouched. StartTime and EndTime must be supplied together to move the
// window, which re-runs validation and recomputes hours.
type UpdateLeaveRequestRequest struct {
	ID              string     `json:"id"`
	LeaveTypeID     *string    `json:"leave_type_id,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	LeaveHours      *int       `json:"-"`
	Reason          *string    `json:"reason,omitempty"`
	Status          *Status    `json:"status,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	AttachmentURL   *string    `json:"attachment_url,omitempty"`
}

func (r *UpdateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if (r.StartTime == nil) != (r.EndTime == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time and end_time must be provided together",
		})
	}

	if r.LeaveTypeID != nil && validator.IsEmpty(*r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id must not be empty",
		})
	}

	if r.Status != nil && !validator.IsValidStatus(int(*r.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be between 0 and 4",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveRequestFilter narrows list queries. Omitted fields are no-ops;
// present fields are AND-combined. The date range matches any request
// whose window intersects [StartDate, EndDate].
type LeaveRequestFilter struct {
	StartDate    *time.Time
	EndDate      *time.Time
	LeaveTypeID  *string
	Status       *Status
	EmployeeID   *string
	DepartmentID *string

	Page  int
	Limit int
}

type LeaveRequestResponse struct {
	ID              string    `json:"id"`
	EmployeeID      string    `json:"employee_id"`
	EmployeeName    string    `json:"employee_name,omitempty"`
	LeaveTypeID     string    `json:"leave_type_id"`
	LeaveTypeName   string    `json:"leave_type_name,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	LeaveHours      int       `json:"leave_hours"`
	Reason          string    `json:"reason"`
	Status          Status    `json:"status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	AttachmentURL   *string   `json:"attachment_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewLeaveRequestResponse(request LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:              request.ID,
		EmployeeID:      request.EmployeeID,
		LeaveTypeID:     request.LeaveTypeID,
		StartTime:       request.StartTime,
		EndTime:         request.EndTime,
		LeaveHours:      request.LeaveHours,
		Reason:          request.Reason,
		Status:          request.Status,
		RejectionReason: request.RejectionReason,
		AttachmentURL:   request.AttachmentURL,
		CreatedAt:       request.CreatedAt,
	}
	if request.EmployeeName != nil {
		resp.EmployeeName = *request.EmployeeName
	}
	if request.LeaveTypeName != nil {
		resp.LeaveTypeName = *request.LeaveTypeName
	}
	return resp
}

type BalanceResponse struct {
	LeaveTypeID    string `json:"leave_type_id"`
	EmployeeID     string `json:"employee_id"`
	RemainingHours *int   `json:"remaining_hours"`
	Unlimited      bool   `json:"unlimited"`
}

func NewBalanceResponse(leaveTypeID, employeeID string, balance Balance) BalanceResponse {
	resp := BalanceResponse{
		LeaveTypeID: leaveTypeID,
		EmployeeID:  employeeID,
		Unlimited:   balance.Unlimited,
	}
	if !balance.Unlimited {
		hours := balance.Hours
		resp.RemainingHours = &hours
	}
	return resp
}
