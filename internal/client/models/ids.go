package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// LocalID is the identifier shown to the user. For saved awards it is derived
// from the ServerID; NewAwardID is reserved for the award under construction.
type LocalID string

const (
	localIDPrefix = "award-"

	// NewAwardID keys the award that has not been created yet.
	NewAwardID LocalID = "award-new"
)

var ErrUntranslatableID = errors.New("untranslatable award id")

// LocalIDOf maps a server id to its display id.
func LocalIDOf(id ServerID) LocalID {
	return LocalID(localIDPrefix + strconv.FormatInt(int64(id), 10))
}

// ServerID translates a display id back to the server id. Every id produced
// by LocalIDOf translates; anything else, NewAwardID included, does not.
func (l LocalID) ServerID() (ServerID, error) {
	raw, ok := strings.CutPrefix(string(l), localIDPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUntranslatableID, string(l))
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != raw {
		return 0, fmt.Errorf("%w: %q", ErrUntranslatableID, string(l))
	}
	return ServerID(n), nil
}

// MustServerID is like ServerID but panics on ids the UI could never have
// presented.
func (l LocalID) MustServerID() ServerID {
	id, err := l.ServerID()
	if err != nil {
		panic(err)
	}
	return id
}

// ParseLocalID accepts either a display id ("award-3") or a bare server id
// ("3") as typed by a user and returns the display id.
func ParseLocalID(s string) (LocalID, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return LocalIDOf(ServerID(n)), nil
	}
	l := LocalID(s)
	if _, err := l.ServerID(); err != nil {
		return "", err
	}
	return l, nil
}
