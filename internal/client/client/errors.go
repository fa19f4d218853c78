package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnavailable    = errors.New("server unavailable")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrDatabaseLocked = errors.New("local database is used by another console")
)

// RemoteError is a failure reported by the award service that has no
// sentinel of its own.
type RemoteError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error %s: %s", e.Code, e.Message)
}

// MarshalJSON keeps the code/message shape when the error is reported.
func (e *RemoteError) MarshalJSON() ([]byte, error) {
	type wire RemoteError
	return json.Marshal((*wire)(e))
}
