// services/errors.go - Error kinds surfaced by the service layer.
//
// Services return these sentinels instead of raising through panics or
// leaking gorm errors; handlers translate them to HTTP statuses at the
// boundary.
package services

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrRoleTaken       = errors.New("role already assigned in this team")
	ErrMemberNotFound  = errors.New("member not found in this role")
	ErrUnknownCategory = errors.New("invalid category")
	ErrUserExists      = errors.New("user id already taken")
)
