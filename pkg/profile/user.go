package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// UserProfile — то, что пользователь рассказал о себе. Единственное
// изменяемое состояние между запросами.
type UserProfile struct {
	UserID           uuid.UUID `json:"userId"`
	Background       string    `json:"background" validate:"max=4000"`
	Interests        []string  `json:"interests" validate:"max=20,dive,max=100"`
	ExperienceLevel  string    `json:"experienceLevel" validate:"omitempty,oneof=junior middle senior lead student"`
	PreferredProgram string    `json:"preferredProgram" validate:"max=200"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// HasBackground reports whether there is text to classify.
func (p UserProfile) HasBackground() bool { return p.Background != "" }

// Repository — порт хранения профилей.
type Repository interface {
	Upsert(ctx context.Context, p UserProfile) error
	Get(ctx context.Context, userID uuid.UUID) (UserProfile, error)
}
