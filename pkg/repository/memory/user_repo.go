// Package memory keeps accounts and profiles in process memory. It backs the
// service when no DATABASE_URL is configured and serves as a fake in tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/artem13815/advisor/pkg/account"
)

// UserRepository implements account.UserRepository.
type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]account.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[string]account.User)}
}

func (r *UserRepository) Create(_ context.Context, user account.User) error {
	key := strings.ToLower(user.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[key]; ok {
		return account.ErrUserAlreadyExists
	}
	user.Email = key
	r.byEmail[key] = user
	return nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (account.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return account.User{}, account.ErrNotFound
	}
	return user, nil
}
