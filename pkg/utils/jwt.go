package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenClaims is the payload of an access token. Subject carries the user id.
type TokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewTokenManager(config JWTConfig) *TokenManager {
	expiry := time.Duration(config.ExpiryMinutes) * time.Minute
	if expiry <= 0 {
		expiry = 30 * time.Minute
	}
	return &TokenManager{
		secret: []byte(config.Secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Issue signs an HS256 token for the given user
func (m *TokenManager) Issue(userID int64, username string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.expiry)

	claims := TokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses a token and returns the user id and username it was issued for
func (m *TokenManager) Verify(tokenStr string) (int64, string, error) {
	var claims TokenClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", ErrInvalidToken
	}
	return userID, claims.Username, nil
}
