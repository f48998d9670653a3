package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/espocity/league/internal/domain/user"
	"github.com/espocity/league/internal/infrastructure/repository/memory"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type staticTokenIssuer struct {
	lastPrincipal user.Principal
}

func (i *staticTokenIssuer) Issue(_ context.Context, principal user.Principal) (string, time.Time, error) {
	i.lastPrincipal = principal
	return "token-123", time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), nil
}

func newAccountServiceFixture() (*AccountService, *staticTokenIssuer, *memory.Store) {
	store := memory.NewStore()
	issuer := &staticTokenIssuer{}
	service := NewAccountService(
		memory.NewUserRepository(store),
		&seqIDGenerator{prefix: "user"},
		plainHasher{},
		issuer,
	)
	return service, issuer, store
}

func TestAccountService_RegisterAndLogin(t *testing.T) {
	service, issuer, _ := newAccountServiceFixture()

	registered, err := service.Register(t.Context(), "alice", "+36301234567", "pass-word-1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.PasswordHash == "pass-word-1" {
		t.Fatalf("password stored in clear")
	}
	if !registered.IsActive || registered.IsAdmin {
		t.Fatalf("unexpected flags: active=%v admin=%v", registered.IsActive, registered.IsAdmin)
	}

	session, err := service.Login(t.Context(), "alice", "pass-word-1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.Token != "token-123" {
		t.Fatalf("unexpected token: %s", session.Token)
	}
	if issuer.lastPrincipal.UserID != registered.ID || issuer.lastPrincipal.Admin {
		t.Fatalf("unexpected principal: %+v", issuer.lastPrincipal)
	}
}

func TestAccountService_RegisterValidation(t *testing.T) {
	service, _, _ := newAccountServiceFixture()

	if _, err := service.Register(t.Context(), "  ", "+3630", "pass-word-1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank username, got %v", err)
	}
	if _, err := service.Register(t.Context(), "alice", "+3630", "short"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
}

func TestAccountService_RegisterDuplicate(t *testing.T) {
	service, _, _ := newAccountServiceFixture()

	if _, err := service.Register(t.Context(), "alice", "+36301", "pass-word-1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := service.Register(t.Context(), "Alice", "+36302", "pass-word-2"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate username, got %v", err)
	}
	if _, err := service.Register(t.Context(), "bob", "+36301", "pass-word-2"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate phone, got %v", err)
	}
}

func TestAccountService_LoginRejections(t *testing.T) {
	service, _, store := newAccountServiceFixture()

	if _, err := service.Register(t.Context(), "alice", "+36301", "pass-word-1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := service.Login(t.Context(), "alice", "wrong-password"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong password, got %v", err)
	}
	if _, err := service.Login(t.Context(), "nobody", "pass-word-1"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown user, got %v", err)
	}

	// Deactivated accounts cannot log in even with valid credentials.
	userRepo := memory.NewUserRepository(store)
	u, _, err := userRepo.GetByUsername(t.Context(), "alice")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	inactive := testUser("u-inactive", "charlie")
	inactive.IsActive = false
	inactive.PasswordHash = u.PasswordHash
	if _, err := userRepo.Create(t.Context(), inactive); err != nil {
		t.Fatalf("seed inactive user: %v", err)
	}
	if _, err := service.Login(t.Context(), "charlie", "pass-word-1"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for inactive user, got %v", err)
	}
}
