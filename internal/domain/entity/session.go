// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "encoding/json"

// Credential is the opaque bearer token issued by the record store's auth endpoint.
type Credential string

// Principal is the authenticated admin user bound to a session.
type Principal struct {
	ID       string          // Record id of the user in the record store.
	Email    string          // Login identifier.
	Name     string          // Display name, may be empty.
	Snapshot json.RawMessage // Serialized profile as returned by the record store.
}

// Session is an immutable credential value. Refreshing or clearing a session
// produces a new value; the existing one is never changed.
type Session struct {
	credential Credential
	principal  *Principal
}

// AnonymousSession is the zero session: no credential, no principal.
var AnonymousSession = Session{}

// NewSession builds a session from a token and the principal it was issued for.
func NewSession(credential Credential, principal *Principal) Session {
	if principal != nil {
		p := *principal
		principal = &p
	}

	return Session{credential: credential, principal: principal}
}

// Credential returns the raw token carried by the session.
func (s Session) Credential() Credential {
	return s.credential
}

// Principal returns a copy of the authenticated principal, or nil.
func (s Session) Principal() *Principal {
	if s.principal == nil {
		return nil
	}
	p := *s.principal

	return &p
}

// IsAnonymous reports whether the session carries no credential.
func (s Session) IsAnonymous() bool {
	return s.credential == ""
}

// IsAuthenticated reports whether the session has both a credential and a principal.
func (s Session) IsAuthenticated() bool {
	return s.credential != "" && s.principal != nil
}
