package domain

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrRefIDTaken          = errors.New("ref_id already exists")
	ErrUserExists          = errors.New("username already taken")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrProviderUnavailable = errors.New("fulfillment provider unavailable")
)
