package gate

import (
	"context"

	"homefinder/internal/domain/session"
)

type View string

const (
	ViewLogin   View = "login"
	ViewProfile View = "profile"
)

type Decision struct {
	View    View
	Session session.Session
}

// Resolve picks the first screen from the presence of a session. It never fails.
func Resolve(ctx context.Context, p session.Provider) Decision {
	if p == nil {
		return Decision{View: ViewLogin}
	}
	s, ok := p.CurrentSession(ctx)
	if !ok {
		return Decision{View: ViewLogin}
	}
	return Decision{View: ViewProfile, Session: s}
}
