package usecase_test

import (
	"context"
	"testing"
	"time"

	"careerhub-backend/internal/domain"
	"careerhub-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// In-memory fakes for exercising the request/register flow end to end at the
// usecase layer.

type fakeUserStore struct {
	byEmail map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*domain.User{}}
}

func (s *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	s.byEmail[user.Email] = user
	return nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range s.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.byEmail[email], nil
}

func (s *fakeUserStore) SetProfileRef(ctx context.Context, userID string, ref domain.ProfileRef) error {
	return nil
}

type fakeOtpStore struct {
	records []*domain.OtpRecord
}

func (s *fakeOtpStore) Create(ctx context.Context, rec *domain.OtpRecord) error {
	s.records = append(s.records, rec)
	return nil
}

func (s *fakeOtpStore) FindByEmailAndCode(ctx context.Context, email, code string) (*domain.OtpRecord, error) {
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].Email == email && s.records[i].Code == code {
			return s.records[i], nil
		}
	}
	return nil, nil
}

func (s *fakeOtpStore) DeleteByEmail(ctx context.Context, email string) error {
	kept := s.records[:0]
	for _, rec := range s.records {
		if rec.Email != email {
			kept = append(kept, rec)
		}
	}
	s.records = kept
	return nil
}

type fakeMailer struct {
	sent []string
}

func (m *fakeMailer) SendOtpEmail(ctx context.Context, to, code string) error {
	m.sent = append(m.sent, code)
	return nil
}

type noThrottle struct{}

func (noThrottle) Reserve(ctx context.Context, email string) (bool, time.Duration, error) {
	return true, 0, nil
}

func (noThrottle) Release(ctx context.Context, email string) error { return nil }

type fakeTokens struct{}

func (fakeTokens) Generate(userID, role string) (string, error) { return "token-" + userID, nil }

func TestOtpFlow(t *testing.T) {
	ctx := context.Background()
	email := "flow@example.com"

	users := newFakeUserStore()
	otps := &fakeOtpStore{}
	mailer := &fakeMailer{}
	uc := usecase.NewAuthUsecase(users, otps, mailer, noThrottle{}, fakeTokens{}, newValidate())

	t.Run("Should invalidate the first code when a second is requested", func(t *testing.T) {
		assert.NoError(t, uc.RequestOtp(ctx, email))
		assert.NoError(t, uc.RequestOtp(ctx, email))
		assert.Len(t, mailer.sent, 2)

		first, second := mailer.sent[0], mailer.sent[1]

		_, err := uc.Register(ctx, domain.RegisterInput{
			Email: email, Password: strongPassword, Role: "seeker", Otp: first,
		})
		if first == second {
			// One-in-a-million collision; the first code is then still live.
			assert.NoError(t, err)
			return
		}
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid or expired OTP")

		result, err := uc.Register(ctx, domain.RegisterInput{
			Email: email, Password: strongPassword, Role: "seeker", Otp: second,
		})
		assert.NoError(t, err)
		assert.Equal(t, email, result.User.Email)
		assert.False(t, result.User.IsProfileComplete)
	})

	t.Run("Should purge codes after a successful registration", func(t *testing.T) {
		assert.Empty(t, otps.records)
	})

	t.Run("Should refuse a second request once registered", func(t *testing.T) {
		err := uc.RequestOtp(ctx, email)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User already exists")
	})
}
