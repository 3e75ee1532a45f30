package seeder

import (
	"context"
	"errors"
	"testing"

	"homefinder/internal/domain/document"
	domprofile "homefinder/internal/domain/profile"
	"homefinder/internal/domain/session"
	ucauth "homefinder/internal/usecase/auth"
)

type funcSeeder struct {
	name string
	fn   func() error
}

func (f funcSeeder) Name() string              { return f.name }
func (f funcSeeder) Run(context.Context) error { return f.fn() }

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	r := Runner{Seeders: []Seeder{
		funcSeeder{"a", func() error { ran = append(ran, "a"); return nil }},
		nil,
		funcSeeder{"b", func() error { ran = append(ran, "b"); return boom }},
		funcSeeder{"c", func() error { ran = append(ran, "c"); return nil }},
	}}

	err := r.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(ran) != 2 || ran[1] != "b" {
		t.Fatalf("unexpected run order %v", ran)
	}
}

type stubAccounts struct {
	existing bool
	signIns  int
}

func (a *stubAccounts) SignUp(context.Context, string, string) (session.Session, error) {
	if a.existing {
		return session.Session{}, ucauth.ErrEmailAlreadyInUse
	}
	return session.Session{ID: "new"}, nil
}

func (a *stubAccounts) SignIn(context.Context, string, string) (session.Session, error) {
	a.signIns++
	return session.Session{ID: "old"}, nil
}

type recordingStore struct {
	key string
	rec document.Record
}

func (s *recordingStore) WriteDocument(_ context.Context, _, key string, rec document.Record) error {
	s.key, s.rec = key, rec
	return nil
}

func (s *recordingStore) ReadDocument(context.Context, string, string) (document.Record, error) {
	return nil, document.ErrNotFound
}

func TestDemoAccount_ExistingAccountSignsIn(t *testing.T) {
	accts := &stubAccounts{existing: true}
	store := &recordingStore{}
	d := DemoAccount{
		Accounts: accts,
		Store:    store,
		Email:    "demo@homefinder.local",
		Password: "demo1234",
		Profile:  domprofile.UserProfile{FullName: "Demo", PhoneNumber: "555-0100"},
	}

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if accts.signIns != 1 {
		t.Fatalf("expected fallback sign-in")
	}
	if store.key != "old" || store.rec["role"] != "buyer" {
		t.Fatalf("unexpected write key=%q rec=%v", store.key, store.rec)
	}
}
