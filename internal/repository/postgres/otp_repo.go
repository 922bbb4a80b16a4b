package postgres

import (
	"context"
	"errors"
	"time"

	"careerhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type otpRepo struct {
	db *pgxpool.Pool
}

func NewOtpRepository(db *pgxpool.Pool) domain.OtpRepository {
	return &otpRepo{db: db}
}

func (r *otpRepo) Create(ctx context.Context, rec *domain.OtpRecord) error {
	query := `INSERT INTO otps (email, code, expires_at, created_at)
              VALUES ($1, $2, $3, $4)
              RETURNING id`
	rec.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query, rec.Email, rec.Code, rec.ExpiresAt, rec.CreatedAt).Scan(&rec.ID)
}

func (r *otpRepo) FindByEmailAndCode(ctx context.Context, email, code string) (*domain.OtpRecord, error) {
	// Match on the exact (email, code) pair. Several rows can transiently
	// exist for one email, so never assume a single row here. Expiry is NOT
	// filtered in SQL; the flow checks it so an expired code produces the
	// OTP-invalid error rather than looking like a missing record.
	query := `SELECT id, email, code, expires_at, created_at
              FROM otps
              WHERE email = $1 AND code = $2
              ORDER BY created_at DESC
              LIMIT 1`
	var rec domain.OtpRecord
	err := r.db.QueryRow(ctx, query, email, code).Scan(
		&rec.ID, &rec.Email, &rec.Code, &rec.ExpiresAt, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *otpRepo) DeleteByEmail(ctx context.Context, email string) error {
	// Also sweeps expired rows for other emails opportunistically; without a
	// background reaper this bounds the growth of unconsumed codes.
	query := `DELETE FROM otps WHERE email = $1 OR expires_at < $2`
	_, err := r.db.Exec(ctx, query, email, time.Now())
	return err
}
