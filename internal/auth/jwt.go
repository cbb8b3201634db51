// Package auth implements access-token generation and validation.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the authenticated identity plus its pairing context.
type Claims struct {
	IdentityID uuid.UUID
	CoupleID   uuid.UUID
	Role       string
}

// JWTManager handles JWT access token generation and validation.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with the couple and role.
type accessClaims struct {
	jwt.RegisteredClaims
	CoupleID string `json:"cid,omitempty"`
	Role     string `json:"role,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT with the identity ID as
// subject and the couple ID and role as custom claims.
func (m *JWTManager) GenerateAccessToken(c Claims) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.IdentityID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		CoupleID: c.CoupleID.String(),
		Role:     c.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token.
// Returns the embedded claims if valid.
func (m *JWTManager) ValidateAccessToken(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Claims{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return Claims{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	identityID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Claims{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	coupleID, err := uuid.Parse(claims.CoupleID)
	if err != nil {
		return Claims{}, fmt.Errorf("invalid couple UUID: %w", err)
	}

	return Claims{IdentityID: identityID, CoupleID: coupleID, Role: claims.Role}, nil
}
