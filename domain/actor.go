package domain

const (
	RoleAdministrator = "administrator"
	RoleEditor        = "editor"
	RoleSubscriber    = "subscriber"
)

// Actor is the identity a request runs as.
// ID 0 always means anonymous, never a real user.
type Actor struct {
	ID   int64
	Role string
}

// Anonymous is the actor of every request without a valid token.
var Anonymous = Actor{}

func (a Actor) IsAnonymous() bool {
	return a.ID == 0
}

// IsPrivileged reports whether the actor may read unpublished posts of
// other users and write comments on behalf of another user.
func (a Actor) IsPrivileged() bool {
	if a.IsAnonymous() {
		return false
	}
	return a.Role == RoleAdministrator || a.Role == RoleEditor
}

// Owns reports whether the actor is the owning user of a record.
// An ownerless record (uid 0) is owned by nobody.
func (a Actor) Owns(uid int64) bool {
	return !a.IsAnonymous() && a.ID == uid
}
