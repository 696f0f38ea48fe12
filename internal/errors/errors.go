package errors

import (
	"errors"
)

var (
	ErrMissingCustomerID  = errors.New("customer_id is required")
	ErrMissingDeviceID    = errors.New("device_id is required")
	ErrInvalidDeviceLimit = errors.New("max_devices must be at least 1")
	ErrInvalidAdminKey    = errors.New("invalid admin key")
	ErrDeviceUnavailable  = errors.New("device registry unavailable")
)
