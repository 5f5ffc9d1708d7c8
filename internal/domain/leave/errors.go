package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrCannotCancel          = errors.New("can only cancel pending or approved leaves")
	ErrUnauthorized          = errors.New("unauthorized to modify this leave request")
)
