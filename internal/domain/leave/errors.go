package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrLeaveTypeExists      = errors.New("leave type with this name already exists")
	ErrEntitlementNotFound  = errors.New("leave entitlement not found")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrRequestNotFound      = errors.New("leave request not found")
	ErrRequestAlreadyClosed = errors.New("leave request has already been processed")
	ErrRejectionReasonRequired = errors.New("rejection requires a reason")
)
