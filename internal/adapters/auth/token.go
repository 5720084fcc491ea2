package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"conferencehub/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Role domain.Role `json:"role"`
}

// JWTService signs and verifies HS256 JWTs carrying {userID, role}.
// It implements both domain.TokenIssuer and domain.TokenVerifier.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTService returns a JWTService signing with the given secret. Each token
// expires after the given duration.
func NewJWTService(secret string, expiry time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), expiry: expiry}
}

func (s *JWTService) Issue(userID int64, role domain.Role) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// errInvalidToken is the single error surfaced for every verification failure,
// so callers cannot distinguish malformed, forged, and expired tokens.
var errInvalidToken = fmt.Errorf("invalid or expired token")

func (s *JWTService) Verify(tokenString string) (int64, domain.Role, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", errInvalidToken
	}
	claims, ok := token.Claims.(*jwtClaims)
	if !ok {
		return 0, "", errInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", errInvalidToken
	}
	if !claims.Role.Valid() {
		return 0, "", errInvalidToken
	}
	return userID, claims.Role, nil
}
