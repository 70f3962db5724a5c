package models

import "errors"

// Lifecycle operations return these so handlers can translate them
// uniformly into flash messages / redirects.
var (
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("no permission")
	ErrInvalid   = errors.New("invalid input")
)
