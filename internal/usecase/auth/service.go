package auth

import (
	"context"
	"errors"
	"strings"

	"homefinder/internal/domain/session"
	"homefinder/internal/domain/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

// Error is a rejection the caller may show to the user verbatim.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

var (
	ErrMissingCredentials = &Error{Code: "missing-credentials", Message: "Email and password must not be empty."}
	ErrInvalidCredential  = &Error{Code: "invalid-credential", Message: "The supplied auth credential is incorrect, malformed or has expired."}
	ErrEmailAlreadyInUse  = &Error{Code: "email-already-in-use", Message: "The email address is already in use by another account."}
	ErrWeakPassword       = &Error{Code: "weak-password", Message: "The given password is invalid. Password should be at least 6 characters."}
	ErrInvalidEmail       = &Error{Code: "invalid-email", Message: "The email address is badly formatted."}

	// ErrInternal carries no user-facing message.
	ErrInternal = errors.New("internal error")
)

// Authenticator is the auth collaborator used by the login flow.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (session.Session, error)
}

type Service struct {
	users  user.Repository
	logger *zap.Logger
}

func NewService(users user.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, logger: logger.Named("auth")}
}

func (s *Service) SignIn(ctx context.Context, email, password string) (session.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return session.Session{}, ErrMissingCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return session.Session{}, ErrInvalidCredential
		}
		s.logger.Error("lookup user", zap.Error(err))
		return session.Session{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return session.Session{}, ErrInvalidCredential
	}

	return sessionFor(u), nil
}

// SignUp creates an account and returns its first session.
func (s *Service) SignUp(ctx context.Context, email, password string) (session.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return session.Session{}, ErrMissingCredentials
	}
	if !strings.Contains(email, "@") {
		return session.Session{}, ErrInvalidEmail
	}
	if len(strings.TrimSpace(password)) < minPasswordLen {
		return session.Session{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password", zap.Error(err))
		return session.Session{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return session.Session{}, ErrEmailAlreadyInUse
		}
		s.logger.Error("create user", zap.Error(err))
		return session.Session{}, ErrInternal
	}

	return sessionFor(u), nil
}

func sessionFor(u user.User) session.Session {
	return session.Session{ID: u.ID.String(), Email: u.Email}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
