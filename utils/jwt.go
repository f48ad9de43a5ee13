package utils

import (
	"errors"
	"time"

	"crmsections/config"

	"github.com/golang-jwt/jwt"
)

// ActorClaims are the claims carried by an access token: the user id in
// "sub" and the ids of the roles the user holds.
type ActorClaims struct {
	Roles []string `json:"roles"`
	jwt.StandardClaims
}

// devSecret signs tokens only outside production when JWT_SECRET is unset.
const devSecret = "crmsections-dev"

func secretKey() ([]byte, error) {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		if config.IsProduction() {
			return nil, config.ErrMissingJWTSecret
		}
		secret = devSecret
	}
	return []byte(secret), nil
}

// GenerateToken creates a signed JWT token for the given user and roles.
// The token expires after the specified duration.
func GenerateToken(subject string, roles []string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := ActorClaims{
		Roles: roles,
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(duration).Unix(),
		},
	}
	key, err := secretKey()
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ValidateToken parses and validates a token string and returns its claims.
func ValidateToken(tokenString string) (*ActorClaims, error) {
	claims := &ActorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey()
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	return claims, nil
}
