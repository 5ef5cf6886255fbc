package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/biztime"
)

// Claims carries the caller's identity and role. There is no refresh
// token and no revocation list: a token is either valid or it is not.
type Claims struct {
	UserID   uint                   `json:"user_id"`
	Username string                 `json:"username"`
	Email    string                 `json:"email"`
	Role     authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret        []byte
	issuer        string
	audience      string
	expiryMinutes int
}

func NewJWTService(secret, issuer, audience string, expiryMinutes int) *JWTService {
	if expiryMinutes <= 0 {
		expiryMinutes = 60
	}
	return &JWTService{
		secret:        []byte(secret),
		issuer:        issuer,
		audience:      audience,
		expiryMinutes: expiryMinutes,
	}
}

// Generate issues a signed HS256 bearer token for the user.
func (s *JWTService) Generate(userID uint, username, email string, role authorization.UserRole) (string, time.Time, error) {
	now := biztime.NowUTC()
	expiresAt := now.Add(time.Duration(s.expiryMinutes) * time.Minute)

	claims := &Claims{
		UserID:   userID,
		Username: username,
		Email:    email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks signature, issuer, audience and expiry. Any failure
// yields the same generic error.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// ExpiryMinutes returns the configured token lifetime in minutes.
func (s *JWTService) ExpiryMinutes() int {
	return s.expiryMinutes
}

// resetTokenLifetime matches the expiry promised in the reset email.
const resetTokenLifetime = 30 * time.Minute

// ResetClaims is the claim set minted into password-reset links. It
// carries no role and a namespaced audience, so a reset token never
// validates as a bearer token.
type ResetClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func (s *JWTService) resetAudience() string {
	return s.audience + ":password-reset"
}

// GenerateResetToken issues a short-lived token for a password reset
// link.
func (s *JWTService) GenerateResetToken(userID uint, email string) (string, time.Time, error) {
	now := biztime.NowUTC()
	expiresAt := now.Add(resetTokenLifetime)

	claims := &ResetClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.resetAudience()},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign reset token: %w", err)
	}

	return signed, expiresAt, nil
}

// VerifyResetToken checks a reset token against the reset audience.
func (s *JWTService) VerifyResetToken(tokenString string) (*ResetClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&ResetClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.resetAudience()),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*ResetClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
