package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/advisor/pkg/profile"
)

// ProfileRepository хранит профили пользователей.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Upsert(ctx context.Context, p profile.UserProfile) error {
	interests := p.Interests
	if interests == nil {
		interests = []string{}
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_profiles (user_id, background, interests, experience_level, preferred_program, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			background = EXCLUDED.background,
			interests = EXCLUDED.interests,
			experience_level = EXCLUDED.experience_level,
			preferred_program = EXCLUDED.preferred_program,
			updated_at = EXCLUDED.updated_at
	`, p.UserID, p.Background, interests, p.ExperienceLevel, p.PreferredProgram, p.UpdatedAt)
	return err
}

func (r *ProfileRepository) Get(ctx context.Context, userID uuid.UUID) (profile.UserProfile, error) {
	var p profile.UserProfile
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, background, interests, experience_level, preferred_program, updated_at
		FROM user_profiles WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.Background, &p.Interests, &p.ExperienceLevel, &p.PreferredProgram, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.UserProfile{}, profile.ErrNotFound
		}
		return profile.UserProfile{}, err
	}
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}
