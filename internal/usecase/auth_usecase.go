package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"time"

	"careerhub-backend/internal/domain"
	"careerhub-backend/pkg/apperror"
	"careerhub-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the rest of the platform uses for password
// hashes.
const bcryptCost = 10

type authUsecase struct {
	users    domain.UserRepository
	otps     domain.OtpRepository
	mailer   domain.OtpMailer
	throttle domain.OtpThrottle
	tokens   domain.TokenIssuer
	validate *validator.Validate
}

func NewAuthUsecase(
	users domain.UserRepository,
	otps domain.OtpRepository,
	mailer domain.OtpMailer,
	throttle domain.OtpThrottle,
	tokens domain.TokenIssuer,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		users:    users,
		otps:     otps,
		mailer:   mailer,
		throttle: throttle,
		tokens:   tokens,
		validate: validate,
	}
}

func (u *authUsecase) RequestOtp(ctx context.Context, email string) error {
	if email == "" {
		return apperror.BadRequest("Email is required")
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return apperror.Internal(err)
	}
	if existing != nil {
		return apperror.Conflict("User already exists")
	}

	reserved := false
	if u.throttle != nil {
		allowed, retryAfter, err := u.throttle.Reserve(ctx, email)
		if err == nil && !allowed {
			wait := int((retryAfter + time.Second - 1) / time.Second)
			return apperror.TooManyRequests(fmt.Sprintf("Please wait %d seconds before requesting a new OTP", wait))
		}
		// A throttle backend error fails open: losing the cooldown is better
		// than blocking registration.
		reserved = err == nil
	}
	sent := false
	defer func() {
		// A request that never delivered a code must not burn the cooldown.
		if reserved && !sent {
			_ = u.throttle.Release(ctx, email)
		}
	}()

	// Purge whatever codes this email accumulated before issuing a new one,
	// so only the freshest code can ever verify.
	if err := u.otps.DeleteByEmail(ctx, email); err != nil {
		return apperror.Internal(err)
	}

	code, err := generateOtpCode(domain.OtpLength)
	if err != nil {
		return apperror.Internal(err)
	}

	rec := &domain.OtpRecord{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(domain.OtpTTL),
	}
	if err := u.otps.Create(ctx, rec); err != nil {
		return apperror.Internal(err)
	}

	// Dispatch failure is fatal for the request: the caller must not be told
	// a code is on the way when it is not.
	if err := u.mailer.SendOtpEmail(ctx, email, code); err != nil {
		return apperror.Internal(err)
	}
	sent = true

	return nil
}

func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.RegisterResult, error) {
	// Validation order is part of the contract: presence, role whitelist,
	// password policy, OTP, uniqueness.
	if in.Email == "" || in.Password == "" || in.Role == "" || in.Otp == "" {
		return nil, apperror.BadRequest("All fields are required")
	}

	if !slices.Contains(domain.ValidRoles, in.Role) {
		return nil, apperror.BadRequest("Invalid role")
	}

	if err := u.validate.Var(in.Password, "strong_password"); err != nil {
		return nil, apperror.BadRequest(validation.PasswordPolicyMessage)
	}

	rec, err := u.otps.FindByEmailAndCode(ctx, in.Email, in.Otp)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if rec == nil || rec.Expired(time.Now()) {
		return nil, apperror.BadRequest("Invalid or expired OTP")
	}

	// Re-check uniqueness: an account may have appeared between OTP issuance
	// and submission. The unique index behind users.Create still backstops
	// the remaining window.
	existing, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, asAppError(err)
	}

	// Cleanup however many codes accumulated for this email.
	if err := u.otps.DeleteByEmail(ctx, in.Email); err != nil {
		return nil, apperror.Internal(err)
	}

	token, err := u.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.RegisterResult{Token: token, User: user.Public()}, nil
}

// generateOtpCode draws each digit independently from crypto/rand; leading
// zeros are permitted.
func generateOtpCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}

// asAppError passes typed errors through and wraps everything else as a
// generic internal failure.
func asAppError(err error) *apperror.AppError {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.Internal(err)
}
