package domain_test

import (
	"encoding/json"
	"testing"

	"careerhub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSkillListUnmarshal(t *testing.T) {
	t.Run("Should accept an array of strings", func(t *testing.T) {
		var s domain.SkillList
		err := json.Unmarshal([]byte(`["Go","Rust"]`), &s)
		assert.NoError(t, err)
		assert.Equal(t, domain.SkillList{"Go", "Rust"}, s)
	})

	t.Run("Should split a comma-delimited string", func(t *testing.T) {
		var s domain.SkillList
		err := json.Unmarshal([]byte(`"Go, Rust, , C++"`), &s)
		assert.NoError(t, err)
		assert.Equal(t, domain.SkillList{"Go", " Rust", " ", " C++"}, s)
		assert.Equal(t, domain.SkillList{"Go", "Rust", "C++"}, s.Normalize())
	})

	t.Run("Should reject other shapes", func(t *testing.T) {
		var s domain.SkillList
		err := json.Unmarshal([]byte(`{"skill":"Go"}`), &s)
		assert.Error(t, err)
	})

	t.Run("Should survive inside a profile payload", func(t *testing.T) {
		var in domain.ProfileInput
		err := json.Unmarshal([]byte(`{"fullName":"Jane","skills":"Go,SQL"}`), &in)
		assert.NoError(t, err)
		assert.Equal(t, domain.SkillList{"Go", "SQL"}, in.Skills)
	})
}

func TestSkillListNormalize(t *testing.T) {
	assert.Equal(t, domain.SkillList{}, domain.SkillList(nil).Normalize())
	assert.Equal(t, domain.SkillList{}, domain.SkillList{"", "  "}.Normalize())
	assert.Equal(t, domain.SkillList{"Go", "Rust"}, domain.SkillList{"  Go", "Rust  "}.Normalize())
}

func TestProfileRefIsZero(t *testing.T) {
	assert.True(t, domain.ProfileRef{}.IsZero())
	assert.False(t, domain.ProfileRef{Kind: domain.ProfileKindSeeker, ID: "sp-1"}.IsZero())
}
