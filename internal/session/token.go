package session

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func getJWTSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

// NewSessionID returns the identifier a cart is keyed by.
func NewSessionID() string {
	return uuid.New().String()
}

// GenerateToken signs a session token. userID is the optional free-text
// identity recorded on receipts and feedback; empty means anonymous.
func GenerateToken(sessionID, userID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("empty sessionID passed to GenerateToken")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sessionID": sessionID,
		"userID":    userID,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken checks the signature and expiry and returns the claims.
func ValidateToken(tokenString string) (string, string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}

	sessionID, _ := claims["sessionID"].(string)
	userID, _ := claims["userID"].(string)

	if sessionID == "" {
		return "", "", errors.New("token carries no session")
	}

	return sessionID, userID, nil
}
