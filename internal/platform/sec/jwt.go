// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec holds the credential code of WebBooks: bcrypt password hashes,
// RS256 access tokens and the staff role ladder.
//
// The token service is handed to auth.Service as its token provider and to
// middleware.Authenticate as its verifier.
package sec

import (
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/webbooks/pkg/uuid"
)

// clockSkew is the leeway granted when checking exp and iat.
const clockSkew = 30 * time.Second

// AuthClaims is the access token payload.
//
// The borrowed-books listing and the staff guards only need the caller's id
// and role, so requests are authorized without a database round trip.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID   string `json:"uid"`
	Username string `json:"unm"`
	Role     string `json:"rol"`
}

// TokenService issues and verifies RS256 access tokens.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
	parser     *jwt.Parser
}

// NewTokenService reads a PEM key pair from disk.
func NewTokenService(privateKeyPath, publicKeyPath, issuer string) (*TokenService, error) {
	privateKey, err := readPEM(privateKeyPath, jwt.ParseRSAPrivateKeyFromPEM)
	if err != nil {
		return nil, err
	}

	publicKey, err := readPEM(publicKeyPath, jwt.ParseRSAPublicKeyFromPEM)
	if err != nil {
		return nil, err
	}

	return NewTokenServiceFromKeys(privateKey, publicKey, issuer), nil
}

func readPEM[K any](path string, parse func([]byte) (K, error)) (K, error) {
	var zero K

	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("sec: failed to read key %s: %w", path, err)
	}

	key, err := parse(data)
	if err != nil {
		return zero, fmt.Errorf("sec: failed to parse key %s: %w", path, err)
	}
	return key, nil
}

// NewTokenServiceFromKeys builds a service from parsed keys. Tests use it
// with a freshly generated pair.
func NewTokenServiceFromKeys(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, issuer string) *TokenService {
	return &TokenService{
		privateKey: privateKey,
		publicKey:  publicKey,
		issuer:     issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

// GenerateAccessToken signs a token for the account valid for timeToLive.
func (service *TokenService) GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error) {
	issuedAt := time.Now()

	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New(),
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(timeToLive)),
		},
		UserID:   userID,
		Username: username,
		Role:     role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(service.privateKey)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature, algorithm, issuer and lifetime, and rejects
// tokens whose subject disagrees with the uid claim.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}

	_, err := service.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return service.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	if claims.UserID == "" || claims.Subject != claims.UserID {
		return nil, fmt.Errorf("sec: token subject does not match its user")
	}
	return claims, nil
}
