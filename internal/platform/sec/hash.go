// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest password bcrypt will hash.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned for passwords bcrypt would reject.
var ErrPasswordTooLong = errors.New("sec: password exceeds 72 bytes")

var (
	decoyOnce sync.Once
	decoyHash []byte
)

// HashPassword returns the bcrypt hash of an account password.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashed), nil
}

/*
CheckPasswordHash reports whether password matches storedHash.

An empty storedHash (the login named no account) is compared against a decoy
hash and always fails, so a login for an unknown account costs the same bcrypt
work as a wrong password.
*/
func CheckPasswordHash(password, storedHash string) bool {
	if storedHash == "" {
		decoyOnce.Do(func() {
			decoyHash, _ = bcrypt.GenerateFromPassword([]byte("webbooks-decoy"), bcrypt.DefaultCost)
		})
		_ = bcrypt.CompareHashAndPassword(decoyHash, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
