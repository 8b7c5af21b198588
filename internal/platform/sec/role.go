// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "errors"

// # Roles

// Role is the privilege level carried by a verified credential.
type Role string

const (
	// RoleNone marks a route that admits any caller.
	RoleNone Role = ""

	// Default role for registered readers
	RoleUser Role = "user"

	// May create, update and delete content
	RoleAdmin Role = "admin"
)

// ParseRole accepts only the closed set of roles a credential may carry.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return RoleNone, false
}

// Identity is the verified caller attached to a request.
type Identity struct {
	ID   string
	Role Role
}

// # Role Gate

var (
	// ErrForbidden is returned when the caller's role does not match.
	ErrForbidden = errors.New("sec: role not permitted")

	// ErrNoIdentity is returned when a role is required but no stage attached
	// an identity. It indicates a wiring mistake in the route pipeline.
	ErrNoIdentity = errors.New("sec: role required but no identity present")
)

// Authorize admits the identity when the requirement is [RoleNone] or the
// roles are equal. Admin does not implicitly satisfy a user requirement.
func Authorize(identity *Identity, required Role) error {
	if required == RoleNone {
		return nil
	}
	if identity == nil {
		return ErrNoIdentity
	}
	if identity.Role != required {
		return ErrForbidden
	}
	return nil
}
