package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/config"
)

const tokenIssuer = "goldenia"

// Claims are the access token claims. Admin status travels in the token
// so route guards do not need a user lookup per request.
type Claims struct {
	UserID  uint64 `json:"uid"`
	IsAdmin bool   `json:"adm"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 access tokens
type TokenManager struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewTokenManager creates a new TokenManager from JWT settings
func NewTokenManager(cfg config.JWTConfig, timeProvider coreport.TimeProvider) *TokenManager {
	return &TokenManager{
		secret:       []byte(cfg.Secret),
		ttl:          cfg.TTL,
		timeProvider: timeProvider,
	}
}

// Generate signs a new access token for the given user
func (m *TokenManager) Generate(userID uint64, isAdmin bool) (string, error) {
	now := m.timeProvider.Now()
	claims := Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses a token string and validates its signature and standard
// claims, returning the embedded claims on success.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
