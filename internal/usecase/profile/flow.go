package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"homefinder/internal/domain/document"
	domprofile "homefinder/internal/domain/profile"
	"homefinder/internal/domain/session"

	"go.uber.org/zap"
)

var (
	ErrNoSession    = errors.New("no active session")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("profile not found")
	ErrWriteFailed  = errors.New("profile write failed")
	ErrUnreadable   = errors.New("stored profile is unreadable")
)

type Form struct {
	FullName    string
	PhoneNumber string
	Role        string
}

type Flow struct {
	store  document.Store
	logger *zap.Logger
}

func NewFlow(store document.Store, logger *zap.Logger) *Flow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Flow{store: store, logger: logger.Named("profile")}
}

// Submit overwrites the current session's profile document with the form.
// Name and phone are stored as entered; blank-after-trim values are rejected.
// Store failures are returned wrapped in ErrWriteFailed.
func (f *Flow) Submit(ctx context.Context, p session.Provider, in Form) (domprofile.UserProfile, error) {
	s, ok := current(ctx, p)
	if !ok {
		return domprofile.UserProfile{}, ErrNoSession
	}

	role, err := domprofile.ParseRole(in.Role)
	if err != nil {
		return domprofile.UserProfile{}, err
	}
	prof := domprofile.UserProfile{
		FullName:    in.FullName,
		PhoneNumber: in.PhoneNumber,
		Role:        role,
	}
	if strings.TrimSpace(prof.FullName) == "" || strings.TrimSpace(prof.PhoneNumber) == "" {
		return domprofile.UserProfile{}, ErrInvalidInput
	}

	if err := f.store.WriteDocument(ctx, domprofile.Collection, s.ID, prof.Record()); err != nil {
		f.logger.Error("write profile", zap.String("session_id", s.ID), zap.Error(err))
		return domprofile.UserProfile{}, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	f.logger.Info("profile written", zap.String("session_id", s.ID), zap.String("role", string(prof.Role)))
	return prof, nil
}

func (f *Flow) Load(ctx context.Context, p session.Provider) (domprofile.UserProfile, error) {
	s, ok := current(ctx, p)
	if !ok {
		return domprofile.UserProfile{}, ErrNoSession
	}

	rec, err := f.store.ReadDocument(ctx, domprofile.Collection, s.ID)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return domprofile.UserProfile{}, ErrNotFound
		}
		return domprofile.UserProfile{}, err
	}

	prof, err := domprofile.FromRecord(rec)
	if err != nil {
		f.logger.Error("unreadable profile", zap.String("session_id", s.ID), zap.Error(err))
		return domprofile.UserProfile{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return prof, nil
}

func current(ctx context.Context, p session.Provider) (session.Session, bool) {
	if p == nil {
		return session.Session{}, false
	}
	return p.CurrentSession(ctx)
}
