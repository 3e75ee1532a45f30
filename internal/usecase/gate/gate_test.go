package gate

import (
	"context"
	"testing"

	"homefinder/internal/domain/session"
)

func TestResolve_NoSession(t *testing.T) {
	d := Resolve(context.Background(), session.Anonymous())
	if d.View != ViewLogin {
		t.Fatalf("expected login view, got %q", d.View)
	}
}

func TestResolve_NilProvider(t *testing.T) {
	if d := Resolve(context.Background(), nil); d.View != ViewLogin {
		t.Fatalf("expected login view, got %q", d.View)
	}
}

func TestResolve_ActiveSession(t *testing.T) {
	d := Resolve(context.Background(), session.Fixed(session.Session{ID: "uid-1"}))
	if d.View != ViewProfile {
		t.Fatalf("expected profile view, got %q", d.View)
	}
	if d.Session.ID != "uid-1" {
		t.Fatalf("expected session uid-1, got %q", d.Session.ID)
	}
}
