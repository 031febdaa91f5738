// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// TokenTTL is the fixed lifetime of an issued token.
const TokenTTL = time.Hour

// bcryptCost matches the work factor used when the user table was first seeded.
const bcryptCost = 10

// Identity is the authenticated caller resolved from a verified token.
type Identity struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Claims is the token payload. The identity is nested under "user" so
// existing clients keep decoding the same shape.
type Claims struct {
	User Identity `json:"user"`
	jwt.RegisteredClaims
}

// HashPassword creates a salted bcrypt hash of the password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// SignToken issues an HS256 token carrying the identity, valid for TokenTTL
func SignToken(identity Identity, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		User: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature and expiry and returns the embedded identity
func VerifyToken(raw, secret string) (Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.User.Email == "" {
		return Identity{}, ErrInvalidToken
	}
	return claims.User, nil
}
