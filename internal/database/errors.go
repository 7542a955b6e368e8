package database

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrDuplicateUsername is returned when registering a username
	// that already exists.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrDuplicateMembership is returned when a (account, campaign)
	// membership row already exists.
	ErrDuplicateMembership = errors.New("account is already a member of campaign")
	// ErrRoleConflict is returned when claiming the game-master role
	// for a campaign which already has one.
	ErrRoleConflict = errors.New("campaign already has a game master")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func constraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
