package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jaevor/go-nanoid"
	"github.com/wetrack/wetrack-backend/internal/domain"
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

type claims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTManager issues HS256 access/refresh pairs. The token type is carried in
// the claims so a refresh token can never pass as an access token.
type JWTManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	newID      func() string
}

func NewJWTManager(secret string, accessTTL, refreshTTL time.Duration) (*JWTManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret is required")
	}
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	return &JWTManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		newID:      idGenerator,
	}, nil
}

func (m *JWTManager) IssuePair(userID string) (*domain.TokenPair, error) {
	access, err := m.issue(userID, typeAccess, m.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := m.issue(userID, typeRefresh, m.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{Access: access, Refresh: refresh}, nil
}

func (m *JWTManager) VerifyAccess(tokenString string) (string, error) {
	return m.verify(tokenString, typeAccess)
}

func (m *JWTManager) VerifyRefresh(tokenString string) (string, error) {
	return m.verify(tokenString, typeRefresh)
}

func (m *JWTManager) issue(userID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        m.newID(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(m.secret)
}

func (m *JWTManager) verify(tokenString, wantType string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	if c.TokenType != wantType {
		return "", fmt.Errorf("%w: wrong token type", domain.ErrUnauthorized)
	}
	if c.Subject == "" {
		return "", fmt.Errorf("%w: token missing subject", domain.ErrUnauthorized)
	}
	return c.Subject, nil
}
