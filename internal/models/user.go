// Package models defines the data records shared by the GraceGather
// services: user accounts, sessions, content items and cloud settings.
package models

import "time"

// Role constants for user authorization.
const (
	RoleAdmin  = "ADMIN"
	RolePastor = "PASTOR"
)

// Account lifecycle states. A freshly registered account is pending until
// an admin approves or rejects it; both outcomes are terminal.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// User is a stored account record. Usernames are lowercase-normalized and
// unique within the collection.
//
// Passwords are stored and compared in plain text. That matches the observed
// behavior this service reproduces; do not deploy it anywhere that matters.
type User struct {
	Username string    `json:"username"`
	Password string    `json:"password"`
	Role     string    `json:"role"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Session is the locally persisted proof of a successful login. It is never
// mirrored to the remote bin and carries no expiry.
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Token    string `json:"token"`
}

// IsAdmin reports whether the session belongs to an admin account.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
