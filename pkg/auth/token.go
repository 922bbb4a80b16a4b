package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("token is malformed")
)

// Claims are the verified contents of a session credential.
type Claims struct {
	UserID string
	Role   string
}

// TokenService signs and verifies HS256 session tokens carrying the account
// id and role.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenService(secretKey string, ttl time.Duration) *TokenService {
	return &TokenService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// Generate signs a token for the account. The validity window starts now.
func (s *TokenService) Generate(userID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"iat":    now.Unix(),
		"exp":    now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Parse validates signature and expiry and returns the claims.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenMalformed
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return nil, ErrTokenMalformed
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, ErrTokenMalformed
	}

	return &Claims{UserID: userID, Role: role}, nil
}
