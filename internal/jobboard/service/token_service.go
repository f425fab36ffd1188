package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/atharv2608/alphaware-task-backend/internal/jobboard/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Generate(userID string) (string, error)
	Verify(tokenString string) (*JWTCustomClaims, error)
	Expiry() time.Duration
}

// TokenService signs and verifies the access token. The signed string is
// never sent to clients as-is; it goes through the TokenCipher first.
type TokenService struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		AccessTokenSecret: secret,
		AccessTokenExpiry: expiry,
	}
}

func (ts *TokenService) Generate(userID string) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AccessTokenSecret))
}

// Verify parses and validates the given access token string. Signature,
// expiry and payload shape are all checked.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.AccessTokenSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func (ts *TokenService) Expiry() time.Duration {
	return ts.AccessTokenExpiry
}
