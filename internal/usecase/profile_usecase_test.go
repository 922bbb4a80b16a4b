package usecase_test

import (
	"context"
	"testing"

	"careerhub-backend/internal/domain"
	"careerhub-backend/internal/usecase"
	"careerhub-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func seekerUser() *domain.User {
	return &domain.User{ID: "u-seeker", Email: "seeker@example.com", Role: domain.RoleSeeker}
}

func recruiterUser() *domain.User {
	return &domain.User{ID: "u-recruiter", Email: "recruiter@example.com", Role: domain.RoleRecruiter}
}

func TestCompleteProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should 404 when the token's account no longer exists", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", mock.Anything, "gone").Return(nil, nil)
		uc := usecase.NewProfileUsecase(users, new(MockSeekerRepo), new(MockRecruiterRepo), newValidate())

		_, err := uc.Complete(ctx, "gone", domain.ProfileInput{})
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should refuse admins", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", mock.Anything, "u-admin").
			Return(&domain.User{ID: "u-admin", Role: domain.RoleAdmin}, nil)
		uc := usecase.NewProfileUsecase(users, new(MockSeekerRepo), new(MockRecruiterRepo), newValidate())

		_, err := uc.Complete(ctx, "u-admin", domain.ProfileInput{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Admin profile is not required")
	})

	t.Run("Should refuse roles it does not know", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", mock.Anything, "u-odd").
			Return(&domain.User{ID: "u-odd", Role: "moderator"}, nil)
		uc := usecase.NewProfileUsecase(users, new(MockSeekerRepo), new(MockRecruiterRepo), newValidate())

		_, err := uc.Complete(ctx, "u-odd", domain.ProfileInput{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unsupported role")
	})

	t.Run("Should require every seeker field", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", mock.Anything, "u-seeker").Return(seekerUser(), nil)
		uc := usecase.NewProfileUsecase(users, new(MockSeekerRepo), new(MockRecruiterRepo), newValidate())

		_, err := uc.Complete(ctx, "u-seeker", domain.ProfileInput{
			FullName: "Jane Doe",
			Phone:    "555-0100",
			// education and experience missing
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Missing required fields")
	})

	t.Run("Should store a seeker profile with normalized skills and flip the ref", func(t *testing.T) {
		users := new(MockUserRepo)
		seekers := new(MockSeekerRepo)

		users.On("GetByID", mock.Anything, "u-seeker").Return(seekerUser(), nil)

		var saved *domain.SeekerProfile
		seekers.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.SeekerProfile")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*domain.SeekerProfile)
				saved.ID = "sp-1"
			}).Return(nil)
		users.On("SetProfileRef", mock.Anything, "u-seeker",
			domain.ProfileRef{Kind: domain.ProfileKindSeeker, ID: "sp-1"}).Return(nil)

		uc := usecase.NewProfileUsecase(users, seekers, new(MockRecruiterRepo), newValidate())

		result, err := uc.Complete(ctx, "u-seeker", domain.ProfileInput{
			FullName:   "Jane Doe",
			Phone:      "555-0100",
			Education:  "BSc",
			Experience: "3 years",
			Skills:     domain.SkillList{"Go", " Rust ", "", "C++"},
		})
		assert.NoError(t, err)
		assert.Equal(t, saved, result)
		assert.Equal(t, domain.SkillList{"Go", "Rust", "C++"}, saved.Skills)
		users.AssertCalled(t, "SetProfileRef", mock.Anything, "u-seeker",
			domain.ProfileRef{Kind: domain.ProfileKindSeeker, ID: "sp-1"})
	})

	t.Run("Should require every recruiter field", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", mock.Anything, "u-recruiter").Return(recruiterUser(), nil)
		uc := usecase.NewProfileUsecase(users, new(MockSeekerRepo), new(MockRecruiterRepo), newValidate())

		_, err := uc.Complete(ctx, "u-recruiter", domain.ProfileInput{CompanyName: "Acme"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Missing required fields")
	})

	t.Run("Should store a recruiter profile and set the recruiter ref", func(t *testing.T) {
		users := new(MockUserRepo)
		recruiters := new(MockRecruiterRepo)

		users.On("GetByID", mock.Anything, "u-recruiter").Return(recruiterUser(), nil)
		recruiters.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.RecruiterProfile")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.RecruiterProfile).ID = "rp-1"
			}).Return(nil)
		users.On("SetProfileRef", mock.Anything, "u-recruiter",
			domain.ProfileRef{Kind: domain.ProfileKindRecruiter, ID: "rp-1"}).Return(nil)

		uc := usecase.NewProfileUsecase(users, new(MockSeekerRepo), recruiters, newValidate())

		result, err := uc.Complete(ctx, "u-recruiter", domain.ProfileInput{
			CompanyName: "Acme",
			Location:    "Berlin",
			Designation: "Hiring Lead",
		})
		assert.NoError(t, err)
		profile, ok := result.(*domain.RecruiterProfile)
		assert.True(t, ok)
		assert.Equal(t, "Acme", profile.CompanyName)
		users.AssertCalled(t, "SetProfileRef", mock.Anything, "u-recruiter",
			domain.ProfileRef{Kind: domain.ProfileKindRecruiter, ID: "rp-1"})
	})
}

func TestGetMine(t *testing.T) {
	ctx := context.Background()

	t.Run("Should 404 when the account is gone", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", mock.Anything, "gone").Return(nil, nil)
		uc := usecase.NewProfileUsecase(users, new(MockSeekerRepo), new(MockRecruiterRepo), newValidate())

		_, err := uc.GetMine(ctx, "gone")
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should return the seeker's profile alongside the account", func(t *testing.T) {
		users := new(MockUserRepo)
		seekers := new(MockSeekerRepo)
		users.On("GetByID", mock.Anything, "u-seeker").Return(seekerUser(), nil)
		seekers.On("GetByUserID", mock.Anything, "u-seeker").
			Return(&domain.SeekerProfile{ID: "sp-1", UserID: "u-seeker", FullName: "Jane Doe"}, nil)

		uc := usecase.NewProfileUsecase(users, seekers, new(MockRecruiterRepo), newValidate())

		result, err := uc.GetMine(ctx, "u-seeker")
		assert.NoError(t, err)
		assert.Equal(t, "seeker@example.com", result.User.Email)
		profile, ok := result.Profile.(*domain.SeekerProfile)
		assert.True(t, ok)
		assert.Equal(t, "Jane Doe", profile.FullName)
	})

	t.Run("Should return a null profile before completion", func(t *testing.T) {
		users := new(MockUserRepo)
		seekers := new(MockSeekerRepo)
		users.On("GetByID", mock.Anything, "u-seeker").Return(seekerUser(), nil)
		seekers.On("GetByUserID", mock.Anything, "u-seeker").Return(nil, nil)

		uc := usecase.NewProfileUsecase(users, seekers, new(MockRecruiterRepo), newValidate())

		result, err := uc.GetMine(ctx, "u-seeker")
		assert.NoError(t, err)
		assert.Nil(t, result.Profile)
	})

	t.Run("Should leave the profile null for admins", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", mock.Anything, "u-admin").
			Return(&domain.User{ID: "u-admin", Email: "admin@example.com", Role: domain.RoleAdmin}, nil)
		seekers := new(MockSeekerRepo)
		recruiters := new(MockRecruiterRepo)

		uc := usecase.NewProfileUsecase(users, seekers, recruiters, newValidate())

		result, err := uc.GetMine(ctx, "u-admin")
		assert.NoError(t, err)
		assert.Nil(t, result.Profile)
		seekers.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
		recruiters.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	})
}
