package leave

import "errors"

var (
	ErrInvalidRange         = errors.New("Leave time range is invalid")
	ErrOverlapConflict      = errors.New("Leave request overlaps an existing request")
	ErrInsufficientBalance  = errors.New("Insufficient remaining leave hours")
	ErrLeaveTypeNotFound    = errors.New("Leave type not found")
	ErrLeaveRequestNotFound = errors.New("Leave request not found")
	ErrForbidden            = errors.New("Operation not permitted on this leave request")
)
