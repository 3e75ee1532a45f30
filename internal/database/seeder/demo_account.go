package seeder

import (
	"context"
	"errors"

	"homefinder/internal/domain/document"
	domprofile "homefinder/internal/domain/profile"
	"homefinder/internal/domain/session"
	ucauth "homefinder/internal/usecase/auth"
)

type Accounts interface {
	SignUp(ctx context.Context, email, password string) (session.Session, error)
	SignIn(ctx context.Context, email, password string) (session.Session, error)
}

// DemoAccount makes sure a known login exists for local testing of the app,
// with a profile document of the given role. Re-running it is harmless.
type DemoAccount struct {
	Accounts Accounts
	Store    document.Store
	Email    string
	Password string
	Profile  domprofile.UserProfile
}

func (d DemoAccount) Name() string { return "demo_account" }

func (d DemoAccount) Run(ctx context.Context) error {
	s, err := d.Accounts.SignUp(ctx, d.Email, d.Password)
	if errors.Is(err, ucauth.ErrEmailAlreadyInUse) {
		s, err = d.Accounts.SignIn(ctx, d.Email, d.Password)
	}
	if err != nil {
		return err
	}

	if d.Store == nil || d.Profile.FullName == "" {
		return nil
	}
	prof := d.Profile
	if prof.Role == "" {
		prof.Role = domprofile.DefaultRole
	}
	return d.Store.WriteDocument(ctx, domprofile.Collection, s.ID, prof.Record())
}
