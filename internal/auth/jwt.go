package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTTL = 72 * time.Hour
	stateTTL = 10 * time.Minute
)

type JWTService struct {
	secretKey string
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secretKey: secret}
}

// GenerateToken issues a bearer token for the given account subject
// (numeric id for password accounts, Google subject id for OAuth accounts).
func (j *JWTService) GenerateToken(subject string) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ValidateToken returns the subject of a valid token.
func (j *JWTService) ValidateToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", errors.New("invalid subject")
	}
	return sub, nil
}

// GenerateState issues the short-lived signed value carried through the
// OAuth consent redirect and handed back on the callback.
func (j *JWTService) GenerateState() (string, error) {
	claims := jwt.MapClaims{
		"use": "oauth_state",
		"exp": time.Now().Add(stateTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *JWTService) ValidateState(state string) error {
	token, err := jwt.Parse(state, func(token *jwt.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid state")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["use"] != "oauth_state" {
		return errors.New("invalid state")
	}
	return nil
}
