package access

import "errors"

var (
	// ErrAccessDenied means the identity is blocked; no session may start.
	ErrAccessDenied = errors.New("access denied")
	// ErrPendingApproval means the account exists but awaits moderation.
	ErrPendingApproval = errors.New("account pending approval")
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("user not found")
)
