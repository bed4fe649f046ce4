// Package permissions holds the authorization rules as pure functions.
// Every decision is deterministic over the actor, the HTTP method and,
// for object-level checks, facts about the already-resolved target.
package permissions

import (
	"net/http"

	"lms/models"
)

// IsSafeMethod reports whether the method is a read (never mutates state).
func IsSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// AdminOrReadOnly is the collection-level rule applied before a target
// resource exists: superusers may do anything, everyone else only reads.
// It deliberately does not check ownership; object-level rules do that.
func AdminOrReadOnly(actor models.Account, method string) bool {
	return actor.IsSuperuser || IsSafeMethod(method)
}

// ContentAccess is the object-level rule for course contents: superusers get
// full access, students enrolled in the owning course (any status) may read.
// No non-superuser ever writes a content.
func ContentAccess(actor models.Account, method string, enrolled bool) bool {
	return actor.IsSuperuser || (IsSafeMethod(method) && enrolled)
}

// EnrollmentManager gates enrollment management. Reads included,
// only superusers pass.
func EnrollmentManager(actor models.Account) bool {
	return actor.IsSuperuser
}
