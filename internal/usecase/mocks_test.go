package usecase_test

import (
	"context"
	"time"

	"careerhub-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) SetProfileRef(ctx context.Context, userID string, ref domain.ProfileRef) error {
	return m.Called(ctx, userID, ref).Error(0)
}

type MockOtpRepo struct {
	mock.Mock
}

func (m *MockOtpRepo) Create(ctx context.Context, rec *domain.OtpRecord) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockOtpRepo) FindByEmailAndCode(ctx context.Context, email, code string) (*domain.OtpRecord, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OtpRecord), args.Error(1)
}

func (m *MockOtpRepo) DeleteByEmail(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendOtpEmail(ctx context.Context, to, code string) error {
	return m.Called(ctx, to, code).Error(0)
}

type MockThrottle struct {
	mock.Mock
}

func (m *MockThrottle) Reserve(ctx context.Context, email string) (bool, time.Duration, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *MockThrottle) Release(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Generate(userID, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

type MockSeekerRepo struct {
	mock.Mock
}

func (m *MockSeekerRepo) Upsert(ctx context.Context, p *domain.SeekerProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockSeekerRepo) GetByUserID(ctx context.Context, userID string) (*domain.SeekerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeekerProfile), args.Error(1)
}

type MockRecruiterRepo struct {
	mock.Mock
}

func (m *MockRecruiterRepo) Upsert(ctx context.Context, p *domain.RecruiterProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockRecruiterRepo) GetByUserID(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruiterProfile), args.Error(1)
}
