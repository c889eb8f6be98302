package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/advisor/pkg/validation"
)

type UseCase interface {
	Register(ctx context.Context, creds Credentials) (Result, error)
	Login(ctx context.Context, creds Credentials) (Result, error)
}

type Result struct {
	User  User
	Token string
}

type service struct {
	repo   UserRepository
	tokens TokenGenerator
	admins map[string]struct{}
	logger *log.Logger
}

// NewService returns the account use case. Accounts registered with one of
// adminEmails get the admin flag.
func NewService(repo UserRepository, tokens TokenGenerator, adminEmails []string, logger *log.Logger) UseCase {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = normalizeEmail(e); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &service{repo: repo, tokens: tokens, admins: admins, logger: logger}
}

func (s *service) Register(ctx context.Context, creds Credentials) (Result, error) {
	creds.Email = normalizeEmail(creds.Email)
	if err := validation.Struct(creds); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	// fail fast before hashing
	if _, err := s.repo.GetByEmail(ctx, creds.Email); err == nil {
		return Result{}, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return Result{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, fmt.Errorf("hash password: %w", err)
	}
	_, admin := s.admins[creds.Email]
	user := User{
		ID:           uuid.New(),
		Email:        creds.Email,
		PasswordHash: string(hash),
		IsAdmin:      admin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return Result{}, err
	}
	s.logger.Info("user registered", "id", user.ID, "admin", user.IsAdmin)

	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return Result{}, fmt.Errorf("issue token: %w", err)
	}
	return Result{User: user, Token: token}, nil
}

func (s *service) Login(ctx context.Context, creds Credentials) (Result, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(creds.Email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Result{}, ErrInvalidCredentials
		}
		return Result{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		return Result{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return Result{}, fmt.Errorf("issue token: %w", err)
	}
	return Result{User: user, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
