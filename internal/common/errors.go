// Package common defines shared constants and sentinel errors used across
// the awards console. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	ErrorNotFound = errors.New("not found")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
