package postgres

import (
	"context"
	"errors"
	"time"

	"careerhub-backend/internal/domain"
	"careerhub-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, password_hash, role, is_profile_complete, is_active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Role,
		user.IsProfileComplete, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		// The unique index on email is the real safety net against two
		// concurrent registrations passing the pre-check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *userRepo) getOne(ctx context.Context, where string, arg interface{}) (*domain.User, error) {
	query := `SELECT id, email, password_hash, role, is_profile_complete, profile_kind, profile_id, is_active, created_at, updated_at
              FROM users ` + where
	var (
		user        domain.User
		profileKind *string
		profileID   *string
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role,
		&user.IsProfileComplete, &profileKind, &profileID,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if profileKind != nil && profileID != nil {
		user.Profile = domain.ProfileRef{Kind: domain.ProfileKind(*profileKind), ID: *profileID}
	}
	return &user, nil
}

func (r *userRepo) SetProfileRef(ctx context.Context, userID string, ref domain.ProfileRef) error {
	query := `UPDATE users SET profile_kind = $2, profile_id = $3, is_profile_complete = TRUE, updated_at = $4 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, userID, string(ref.Kind), ref.ID, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}
