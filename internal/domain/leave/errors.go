package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidDateRange     = errors.New("to date must not be before from date")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
	ErrCommentRequired      = errors.New("an admin comment is required to reject a leave request")
)
