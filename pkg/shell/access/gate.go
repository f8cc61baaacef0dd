// Package access gates the application shell on authentication and
// permission state. The gate only reads the session context supplied by the
// auth collaborator; it never redirects and never mutates navigation state.
package access

import (
	"github.com/fieldsuite/fieldsuite/modules/core/domain/aggregates/user"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

type State int

const (
	// Resolving: session status is not known yet. The shell renders a
	// loading state; the session provider is responsible for eventually
	// settling, the gate imposes no deadline.
	Resolving State = iota
	// Unauthenticated: no valid session. Rendered as an inline login view
	// so a successful login lands back on the same section.
	Unauthenticated
	// Forbidden: valid session, but the active section requires permissions
	// the user lacks. A first-class state with a user-visible explanation,
	// not an error.
	Forbidden
	Authorized
)

func (s State) String() string {
	switch s {
	case Resolving:
		return "resolving"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case Authorized:
		return "authorized"
	}
	return "unknown"
}

// SessionContext is the read-only view of the authentication collaborator's
// state that drives gate decisions.
type SessionContext struct {
	IsAuthenticated bool
	IsLoading       bool
	User            user.User
}

// universalRoles bypass every permission check, present and future. Policy
// decision: the bypass is role-based and unconditional rather than an
// allow-listed permission subset, so newly introduced permissions never
// need to be back-filled onto owner/admin roles.
var universalRoles = map[user.Role]bool{
	user.RoleOwner: true,
	user.RoleAdmin: true,
}

// CanAccess reports whether u may enter the section: unrestricted sections
// admit everyone, universal roles bypass all checks, and otherwise the
// user's permission set must intersect the section's required set.
func CanAccess(u user.User, section types.Section) bool {
	if len(section.Permissions) == 0 {
		return true
	}
	if u == nil {
		return false
	}
	if universalRoles[u.Role()] {
		return true
	}
	for _, perm := range section.Permissions {
		if u.Can(perm) {
			return true
		}
	}
	return false
}

// Evaluate derives the gate state for the given session and active section.
func Evaluate(session SessionContext, section types.Section) State {
	if session.IsLoading {
		return Resolving
	}
	if !session.IsAuthenticated || session.User == nil {
		return Unauthenticated
	}
	if !CanAccess(session.User, section) {
		return Forbidden
	}
	return Authorized
}
