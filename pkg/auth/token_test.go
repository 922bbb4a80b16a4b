package auth_test

import (
	"testing"
	"time"

	"careerhub-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundtrip(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	token, err := svc.Generate("u-1", "seeker")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "seeker", claims.Role)
}

func TestTokenExpired(t *testing.T) {
	svc := auth.NewTokenService("test-secret", -time.Minute)

	token, err := svc.Generate("u-1", "seeker")
	assert.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	signer := auth.NewTokenService("secret-a", time.Hour)
	verifier := auth.NewTokenService("secret-b", time.Hour)

	token, err := signer.Generate("u-1", "recruiter")
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	_, err := svc.Parse("not-a-token")
	assert.Error(t, err)
}
