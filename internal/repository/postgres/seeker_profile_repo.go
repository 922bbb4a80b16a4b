package postgres

import (
	"context"
	"errors"
	"time"

	"careerhub-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seekerProfileRepo struct {
	db *pgxpool.Pool
}

func NewSeekerProfileRepository(db *pgxpool.Pool) domain.SeekerProfileRepository {
	return &seekerProfileRepo{db: db}
}

func (r *seekerProfileRepo) Upsert(ctx context.Context, p *domain.SeekerProfile) error {
	// Wholesale replacement keyed on user_id: every column is overwritten so
	// repeated completions never merge old and new fields. The unique index
	// on user_id enforces one profile per account.
	query := `
		INSERT INTO seeker_profiles (
			id, user_id, full_name, phone, education, experience, skills, resume_url, profile_image_url, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			education = EXCLUDED.education,
			experience = EXCLUDED.experience,
			skills = EXCLUDED.skills,
			resume_url = EXCLUDED.resume_url,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(ctx, query,
		uuid.New().String(), p.UserID, p.FullName, p.Phone, p.Education, p.Experience,
		[]string(p.Skills), p.ResumeURL, p.ProfileImageURL, now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *seekerProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.SeekerProfile, error) {
	query := `SELECT id, user_id, full_name, phone, education, experience, skills, resume_url, profile_image_url, created_at, updated_at
              FROM seeker_profiles
              WHERE user_id = $1`
	var (
		p      domain.SeekerProfile
		skills []string
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Phone, &p.Education, &p.Experience,
		&skills, &p.ResumeURL, &p.ProfileImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Skills = domain.SkillList(skills)
	return &p, nil
}
