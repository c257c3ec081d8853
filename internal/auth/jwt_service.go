package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	// AccessTokenExpiry is the duration the auth flows use for access tokens.
	AccessTokenExpiry = 15 * time.Minute
	// DefaultTokenExpiry is the fallback lifetime when no TTL is specified.
	DefaultTokenExpiry = 7 * 24 * time.Hour
)

var (
	// ErrTokenExpired is returned when a token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned when a token fails signature or shape checks.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims represents JWT claims carried by access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation. The signing secret
// is injected at construction; there is no process-wide default.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// GenerateAccessToken generates a short-lived access token for the user.
func (s *JWTService) GenerateAccessToken(userID, email string) (string, error) {
	return s.GenerateToken(userID, email, AccessTokenExpiry)
}

// GenerateToken generates a signed token with the given lifetime. A zero or
// negative ttl falls back to DefaultTokenExpiry.
func (s *JWTService) GenerateToken(userID, email string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenExpiry
	}
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a JWT token and returns the claims. Expired tokens
// yield ErrTokenExpired; any other failure yields ErrTokenInvalid.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
