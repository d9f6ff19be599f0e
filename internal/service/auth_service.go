package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Common errors
var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrMissingSubject = errors.New("token carries no user identity")
)

// AuthService verifies access tokens issued by the external auth service.
// Users, logins and refresh flows live in that service; this one only reads tokens.
type AuthService interface {
	ValidateAccessToken(tokenString string) (*Claims, error)
	GenerateAccessToken(userID, email, restaurantID string) (string, error)
}

// Claims represents JWT claims
type Claims struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	RestaurantID string `json:"restaurantId"`
	jwt.RegisteredClaims
}

// Restaurant returns the restaurant the caller acts for, which defaults to the user itself
func (c *Claims) Restaurant() string {
	if c.RestaurantID != "" {
		return c.RestaurantID
	}
	return c.UserID
}

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	JWTSecret           string
	JWTAccessExpiration time.Duration
}

// authService implements AuthService
type authService struct {
	jwtSecret           []byte
	jwtAccessExpiration time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(config AuthServiceConfig) AuthService {
	expiration := config.JWTAccessExpiration
	if expiration <= 0 {
		expiration = time.Hour
	}
	return &authService{
		jwtSecret:           []byte(config.JWTSecret),
		jwtAccessExpiration: expiration,
	}
}

// GenerateAccessToken signs an access token in the same shape the auth service issues
func (s *authService) GenerateAccessToken(userID, email, restaurantID string) (string, error) {
	if userID == "" {
		return "", ErrMissingSubject
	}

	now := time.Now()
	claims := &Claims{
		UserID:       userID,
		Email:        email,
		RestaurantID: restaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtAccessExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken validates a JWT access token and returns the claims
func (s *authService) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// tokens minted with only a subject still identify the user
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}
