package store

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when creating a user with an email
	// that is already registered.
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrDuplicateVote is returned when a user votes twice for the same link.
	ErrDuplicateVote = errors.New("user has already voted for this link")
)

// isUniqueViolation reports whether err is a unique-constraint violation from
// any of the supported drivers. None of them export a portable sentinel, so
// this matches on the driver message text:
//
//	sqlite:   "UNIQUE constraint failed: ..."
//	postgres: "duplicate key value violates unique constraint ..."
//	mysql:    "Error 1062 ... Duplicate entry ..."
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "Duplicate entry")
}
