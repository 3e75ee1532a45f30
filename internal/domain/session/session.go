// Package session models the authenticated identity owned by the auth
// collaborator. Callers never reach for process-wide state; they are handed a
// Provider and ask it for the current session.
package session

import "context"

// Session is an authenticated identity, referenced by an opaque ID.
type Session struct {
	ID    string
	Email string
}

// Provider answers whether a session is currently active. A missing session
// is the normal logged-out case and is reported with ok=false, not an error.
type Provider interface {
	CurrentSession(ctx context.Context) (s Session, ok bool)
}

type ProviderFunc func(ctx context.Context) (Session, bool)

func (f ProviderFunc) CurrentSession(ctx context.Context) (Session, bool) {
	return f(ctx)
}

func Anonymous() Provider {
	return ProviderFunc(func(context.Context) (Session, bool) {
		return Session{}, false
	})
}

// Fixed always reports s. An empty s.ID is treated as no session.
func Fixed(s Session) Provider {
	return ProviderFunc(func(context.Context) (Session, bool) {
		if s.ID == "" {
			return Session{}, false
		}
		return s, true
	})
}
