package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/espocity/league/internal/domain/user"
	idgen "github.com/espocity/league/internal/platform/id"
)

const minPasswordLength = 8

// TokenIssuer mints bearer tokens for authenticated principals.
type TokenIssuer interface {
	Issue(ctx context.Context, principal user.Principal) (token string, expiresAt time.Time, err error)
}

// PasswordHasher hashes and verifies user credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      user.User
}

// AccountService handles registration and login.
type AccountService struct {
	userRepo user.Repository
	ids      idgen.Generator
	hasher   PasswordHasher
	tokens   TokenIssuer
	now      func() time.Time
}

func NewAccountService(userRepo user.Repository, ids idgen.Generator, hasher PasswordHasher, tokens TokenIssuer) *AccountService {
	return &AccountService{
		userRepo: userRepo,
		ids:      ids,
		hasher:   hasher,
		tokens:   tokens,
		now:      time.Now,
	}
}

func (s *AccountService) Register(ctx context.Context, username, phone, password string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.Register")
	defer span.End()

	username = strings.TrimSpace(username)
	phone = strings.TrimSpace(phone)
	if username == "" || phone == "" {
		return user.User{}, fmt.Errorf("%w: username and phone are required", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return user.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.ids.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	now := s.now().UTC()
	created, err := s.userRepo.Create(ctx, user.User{
		ID:           id,
		Username:     username,
		Phone:        phone,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicate) {
			return user.User{}, fmt.Errorf("%w: username or phone already registered", ErrConflict)
		}
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

func (s *AccountService) Login(ctx context.Context, username, password string) (Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.Login")
	defer span.End()

	u, found, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return Session{}, fmt.Errorf("get user by username: %w", err)
	}
	if !found || !u.IsActive {
		return Session{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return Session{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, expiresAt, err := s.tokens.Issue(ctx, user.Principal{
		UserID:   u.ID,
		Username: u.Username,
		Admin:    u.IsAdmin,
	})
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}

	return Session{Token: token, ExpiresAt: expiresAt, User: u}, nil
}
