package domain

import (
	"context"
	"time"
)

// OtpLength is the number of digits in a one-time password.
const OtpLength = 6

// OtpTTL is how long an issued code stays valid. Expiry is checked lazily at
// verification time; there is no sweep job.
const OtpTTL = 5 * time.Minute

// OtpRecord is an ephemeral email -> code mapping used only during
// registration. Several rows may transiently exist for one email between a
// purge and the following insert; verification therefore matches on the
// exact (email, code) pair instead of assuming a single row.
type OtpRecord struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *OtpRecord) Expired(now time.Time) bool {
	return r.ExpiresAt.Before(now)
}

type OtpRepository interface {
	Create(ctx context.Context, rec *OtpRecord) error
	// FindByEmailAndCode returns (nil, nil) when no row matches the pair.
	// Expiry is not filtered here; the caller checks it.
	FindByEmailAndCode(ctx context.Context, email, code string) (*OtpRecord, error)
	// DeleteByEmail purges every code issued to the email.
	DeleteByEmail(ctx context.Context, email string) error
}

// OtpMailer delivers the code to the user out-of-band. The code must appear
// as unambiguous plain text in the message.
type OtpMailer interface {
	SendOtpEmail(ctx context.Context, to, code string) error
}

// OtpThrottle enforces the resend cooldown between two code requests for the
// same email. Reserve returns allowed=false and the remaining wait when the
// cooldown is still running. Release undoes a reservation when the request it
// guarded failed, so the user can retry right away.
type OtpThrottle interface {
	Reserve(ctx context.Context, email string) (allowed bool, retryAfter time.Duration, err error)
	Release(ctx context.Context, email string) error
}
