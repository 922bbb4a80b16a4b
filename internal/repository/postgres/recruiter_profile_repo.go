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

type recruiterProfileRepo struct {
	db *pgxpool.Pool
}

func NewRecruiterProfileRepository(db *pgxpool.Pool) domain.RecruiterProfileRepository {
	return &recruiterProfileRepo{db: db}
}

func (r *recruiterProfileRepo) Upsert(ctx context.Context, p *domain.RecruiterProfile) error {
	query := `
		INSERT INTO recruiter_profiles (
			id, user_id, company_name, location, designation, company_website, company_email, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			location = EXCLUDED.location,
			designation = EXCLUDED.designation,
			company_website = EXCLUDED.company_website,
			company_email = EXCLUDED.company_email,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(ctx, query,
		uuid.New().String(), p.UserID, p.CompanyName, p.Location, p.Designation,
		p.CompanyWebsite, p.CompanyEmail, now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *recruiterProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	query := `SELECT id, user_id, company_name, location, designation, company_website, company_email, created_at, updated_at
              FROM recruiter_profiles
              WHERE user_id = $1`
	var p domain.RecruiterProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.Location, &p.Designation,
		&p.CompanyWebsite, &p.CompanyEmail, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
