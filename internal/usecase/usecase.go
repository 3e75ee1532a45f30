// Package usecase declares what the delivery layer needs from each flow.
package usecase

import (
	"context"

	domprofile "homefinder/internal/domain/profile"
	"homefinder/internal/domain/session"
	"homefinder/internal/usecase/login"
	ucprofile "homefinder/internal/usecase/profile"
)

type LoginUsecase interface {
	Submit(ctx context.Context, email, password string) login.Result
}

type SignUpUsecase interface {
	SignUp(ctx context.Context, email, password string) (session.Session, error)
}

type ProfileUsecase interface {
	Submit(ctx context.Context, p session.Provider, in ucprofile.Form) (domprofile.UserProfile, error)
	Load(ctx context.Context, p session.Provider) (domprofile.UserProfile, error)
}
