package usecase

import (
	"context"

	"careerhub-backend/internal/domain"
	"careerhub-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	users      domain.UserRepository
	seekers    domain.SeekerProfileRepository
	recruiters domain.RecruiterProfileRepository
	validate   *validator.Validate
}

func NewProfileUsecase(
	users domain.UserRepository,
	seekers domain.SeekerProfileRepository,
	recruiters domain.RecruiterProfileRepository,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		users:      users,
		seekers:    seekers,
		recruiters: recruiters,
		validate:   validate,
	}
}

type seekerRequired struct {
	FullName   string `validate:"required"`
	Phone      string `validate:"required"`
	Education  string `validate:"required"`
	Experience string `validate:"required"`
}

type recruiterRequired struct {
	CompanyName string `validate:"required"`
	Location    string `validate:"required"`
	Designation string `validate:"required"`
}

func (u *profileUsecase) Complete(ctx context.Context, userID string, in domain.ProfileInput) (interface{}, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	switch user.Role {
	case domain.RoleAdmin:
		return nil, apperror.BadRequest("Admin profile is not required")

	case domain.RoleSeeker:
		req := seekerRequired{
			FullName:   in.FullName,
			Phone:      in.Phone,
			Education:  in.Education,
			Experience: in.Experience,
		}
		if err := u.validate.Struct(req); err != nil {
			return nil, apperror.BadRequest("Missing required fields")
		}

		profile := &domain.SeekerProfile{
			UserID:          user.ID,
			FullName:        in.FullName,
			Phone:           in.Phone,
			Education:       in.Education,
			Experience:      in.Experience,
			Skills:          in.Skills.Normalize(),
			ResumeURL:       in.ResumeURL,
			ProfileImageURL: in.ProfileImageURL,
		}
		if err := u.seekers.Upsert(ctx, profile); err != nil {
			return nil, apperror.Internal(err)
		}
		ref := domain.ProfileRef{Kind: domain.ProfileKindSeeker, ID: profile.ID}
		if err := u.users.SetProfileRef(ctx, user.ID, ref); err != nil {
			return nil, asAppError(err)
		}
		return profile, nil

	case domain.RoleRecruiter:
		req := recruiterRequired{
			CompanyName: in.CompanyName,
			Location:    in.Location,
			Designation: in.Designation,
		}
		if err := u.validate.Struct(req); err != nil {
			return nil, apperror.BadRequest("Missing required fields")
		}

		profile := &domain.RecruiterProfile{
			UserID:         user.ID,
			CompanyName:    in.CompanyName,
			Location:       in.Location,
			Designation:    in.Designation,
			CompanyWebsite: in.CompanyWebsite,
			CompanyEmail:   in.CompanyEmail,
		}
		if err := u.recruiters.Upsert(ctx, profile); err != nil {
			return nil, apperror.Internal(err)
		}
		ref := domain.ProfileRef{Kind: domain.ProfileKindRecruiter, ID: profile.ID}
		if err := u.users.SetProfileRef(ctx, user.ID, ref); err != nil {
			return nil, asAppError(err)
		}
		return profile, nil

	default:
		return nil, apperror.BadRequest("Unsupported role")
	}
}

func (u *profileUsecase) GetMine(ctx context.Context, userID string) (*domain.MyProfile, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	result := &domain.MyProfile{User: user.Public()}

	// Admins have no profile document; Profile stays null.
	switch user.Role {
	case domain.RoleSeeker:
		profile, err := u.seekers.GetByUserID(ctx, userID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if profile != nil {
			result.Profile = profile
		}
	case domain.RoleRecruiter:
		profile, err := u.recruiters.GetByUserID(ctx, userID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if profile != nil {
			result.Profile = profile
		}
	}

	return result, nil
}
