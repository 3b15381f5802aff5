package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"photomap-backend/internal/utils"
)

// AuthService guards the admin map view. The gate is optional: with no
// admin password configured, the service is disabled and the list
// endpoint stays open, matching the original deployment.
type AuthService struct {
	passwordHash []byte
}

// NewAuthService hashes the configured admin password. An empty
// password disables the gate.
func NewAuthService(adminPassword string) (*AuthService, error) {
	if adminPassword == "" {
		return &AuthService{}, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{passwordHash: hash}, nil
}

// Enabled reports whether the admin gate is active.
func (s *AuthService) Enabled() bool {
	return len(s.passwordHash) > 0
}

var ErrInvalidPassword = errors.New("invalid password")

// Login checks the admin password and issues a bearer token.
func (s *AuthService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}
	return GenerateJWT()
}

func GenerateJWT() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(12 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.GetEnv("JWT_SECRET", "secret")))
}

func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(utils.GetEnv("JWT_SECRET", "secret")), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
