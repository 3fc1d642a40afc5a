package service

import "errors"

var (
	// ErrValidation marks input rejected before it reaches storage
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized marks bad credentials or tokens
	ErrUnauthorized = errors.New("unauthorized")
)
