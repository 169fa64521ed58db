package crm

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("invalid input")
	ErrInsufficientPoints = errors.New("not enough points")
	ErrSelfReferral       = errors.New("cannot refer yourself")
	ErrConflict           = errors.New("concurrent update conflict")
	ErrUnavailable        = errors.New("storage unavailable")
)
