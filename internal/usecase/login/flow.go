package login

import (
	"context"
	"errors"
	"strings"

	"homefinder/internal/domain/session"
	"homefinder/internal/usecase/auth"

	"go.uber.org/zap"
)

// FallbackMessage is shown when the authenticator gives no message of its own.
const FallbackMessage = "Login failed"

type Result struct {
	Session      session.Session
	Token        string
	Succeeded    bool
	ErrorMessage string
	// Err is set when the credentials were accepted but no token could be
	// issued. The continuation does not run in that case.
	Err error
}

// TokenIssuer mints the access token handed back for a signed-in session.
type TokenIssuer func(sessionID, email string) (string, error)

type Option func(*Flow)

// WithOnSuccess registers the continuation run after each successful sign-in.
func WithOnSuccess(fn func(ctx context.Context, s session.Session)) Option {
	return func(f *Flow) {
		f.onSuccess = fn
	}
}

// WithTokenIssuer issues the session's token before the continuation runs.
func WithTokenIssuer(issue TokenIssuer) Option {
	return func(f *Flow) {
		f.issue = issue
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(f *Flow) {
		if l != nil {
			f.logger = l
		}
	}
}

type Flow struct {
	auth      auth.Authenticator
	onSuccess func(ctx context.Context, s session.Session)
	issue     TokenIssuer
	logger    *zap.Logger
}

func NewFlow(a auth.Authenticator, opts ...Option) *Flow {
	f := &Flow{auth: a, logger: zap.NewNop()}
	for _, o := range opts {
		o(f)
	}
	f.logger = f.logger.Named("login")
	return f
}

// Submit passes the credentials to the authenticator unchanged and waits for
// its answer.
func (f *Flow) Submit(ctx context.Context, email, password string) Result {
	s, err := f.auth.SignIn(ctx, email, password)
	if err != nil {
		msg := displayMessage(err)
		f.logger.Info("sign-in rejected", zap.String("reason", msg), zap.Error(err))
		return Result{ErrorMessage: msg}
	}

	var token string
	if f.issue != nil {
		token, err = f.issue(s.ID, s.Email)
		if err != nil {
			f.logger.Error("issue token", zap.String("session_id", s.ID), zap.Error(err))
			return Result{Session: s, ErrorMessage: FallbackMessage, Err: err}
		}
	}

	if f.onSuccess != nil {
		f.onSuccess(ctx, s)
	}
	return Result{Session: s, Token: token, Succeeded: true}
}

func displayMessage(err error) string {
	var authErr *auth.Error
	if errors.As(err, &authErr) && authErr != nil {
		if msg := strings.TrimSpace(authErr.Message); msg != "" {
			return msg
		}
	}
	return FallbackMessage
}
