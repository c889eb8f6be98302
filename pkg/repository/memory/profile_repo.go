package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/artem13815/advisor/pkg/profile"
)

// ProfileRepository implements profile.Repository.
type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]profile.UserProfile
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{profiles: make(map[uuid.UUID]profile.UserProfile)}
}

func (r *ProfileRepository) Upsert(_ context.Context, p profile.UserProfile) error {
	p.Interests = append([]string(nil), p.Interests...)
	r.mu.Lock()
	r.profiles[p.UserID] = p
	r.mu.Unlock()
	return nil
}

func (r *ProfileRepository) Get(_ context.Context, userID uuid.UUID) (profile.UserProfile, error) {
	r.mu.RLock()
	p, ok := r.profiles[userID]
	r.mu.RUnlock()
	if !ok {
		return profile.UserProfile{}, profile.ErrNotFound
	}
	p.Interests = append([]string(nil), p.Interests...)
	return p, nil
}
