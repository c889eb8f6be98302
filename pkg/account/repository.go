package account

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository stores accounts. Emails are compared case-insensitively.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}

// TokenGenerator issues access tokens for a user.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}
