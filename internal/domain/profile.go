package domain

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// ProfileKind discriminates which profile document a user's profile reference
// points at. Admins never get a profile, so None is a valid steady state.
type ProfileKind string

const (
	ProfileKindNone      ProfileKind = ""
	ProfileKindSeeker    ProfileKind = "SeekerProfile"
	ProfileKindRecruiter ProfileKind = "RecruiterProfile"
)

// ProfileRef is the tagged profile reference owned by a User:
// either None, or a kind plus the id of exactly one profile document.
type ProfileRef struct {
	Kind ProfileKind `json:"kind,omitempty"`
	ID   string      `json:"id,omitempty"`
}

func (r ProfileRef) IsZero() bool { return r.Kind == ProfileKindNone && r.ID == "" }

// SkillList is an ordered set of skill strings. It unmarshals from either a
// JSON array of strings or a single comma-delimited string, matching what the
// registration frontend sends in each of its modes.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = arr
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = strings.Split(str, ",")
	return nil
}

// Normalize trims each entry, drops empties, and preserves the remaining
// order.
func (s SkillList) Normalize() SkillList {
	out := make(SkillList, 0, len(s))
	for _, skill := range s {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		out = append(out, skill)
	}
	return out
}

type SeekerProfile struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	FullName        string    `json:"fullName"`
	Phone           string    `json:"phone"`
	Education       string    `json:"education"`
	Experience      string    `json:"experience"`
	Skills          SkillList `json:"skills"`
	ResumeURL       string    `json:"resumeUrl,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RecruiterProfile struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	CompanyName    string    `json:"companyName"`
	Location       string    `json:"location"`
	Designation    string    `json:"designation"`
	CompanyWebsite string    `json:"companyWebsite,omitempty"`
	CompanyEmail   string    `json:"companyEmail,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProfileInput carries the role-specific completion payload. The request body
// is a single flat object; which fields matter depends on the account's role.
type ProfileInput struct {
	// Seeker fields
	FullName        string    `json:"fullName"`
	Phone           string    `json:"phone"`
	Education       string    `json:"education"`
	Experience      string    `json:"experience"`
	Skills          SkillList `json:"skills"`
	ResumeURL       string    `json:"resumeUrl"`
	ProfileImageURL string    `json:"profileImageUrl"`

	// Recruiter fields
	CompanyName    string `json:"companyName"`
	Location       string `json:"location"`
	Designation    string `json:"designation"`
	CompanyWebsite string `json:"companyWebsite"`
	CompanyEmail   string `json:"companyEmail"`
}

// MyProfile pairs the public account projection with the role-specific
// profile document. Profile is nil until completion, and always nil for
// admins.
type MyProfile struct {
	User    PublicUser  `json:"user"`
	Profile interface{} `json:"profile"`
}

type SeekerProfileRepository interface {
	// Upsert replaces the whole document keyed by user id and fills in the
	// generated id and timestamps.
	Upsert(ctx context.Context, p *SeekerProfile) error
	// GetByUserID returns (nil, nil) when no profile exists yet.
	GetByUserID(ctx context.Context, userID string) (*SeekerProfile, error)
}

type RecruiterProfileRepository interface {
	Upsert(ctx context.Context, p *RecruiterProfile) error
	GetByUserID(ctx context.Context, userID string) (*RecruiterProfile, error)
}

type ProfileUsecase interface {
	// Complete upserts the role-specific profile and returns the resulting
	// document.
	Complete(ctx context.Context, userID string, in ProfileInput) (interface{}, error)
	GetMine(ctx context.Context, userID string) (*MyProfile, error)
}
