// services/errors.go
package services

import "errors"

// Sentinel errors the handlers map to HTTP statuses.
var (
	ErrNotTeamMember = errors.New("not a member of this team")
	ErrForbidden     = errors.New("access denied")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyMember = errors.New("already a member of this team")
	ErrNoTeam        = errors.New("user is not part of a team")
)
