package order

import "errors"

var (
	ErrMissingField     = errors.New("required field is missing")
	ErrUnknownStatus    = errors.New("unknown order status")
	ErrTerminalStatus   = errors.New("order is in a terminal status")
	ErrNoNextStatus     = errors.New("order has no next status")
	ErrNoPreviousStatus = errors.New("order has no previous status")
	ErrNotFound         = errors.New("order not found")
	ErrConcurrentUpdate = errors.New("order status changed concurrently")
	ErrStatusUnchanged  = errors.New("order already has this status")
)
