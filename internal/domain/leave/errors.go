package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidLeaveRange    = errors.New("leave date range is invalid")
	ErrAlreadyDecided       = errors.New("leave request has already been approved or rejected")
)
