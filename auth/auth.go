// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidToken = errors.New("invalid admin token")

// GenerateToken creates a random URL-safe admin token. Meant for operators
// who want the server to mint one at startup instead of configuring their own.
func GenerateToken() (string, error) {
	b := make([]byte, 24) // 192 bits of entropy
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate admin token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// ValidateToken checks a client-supplied token against the configured one in
// constant time.
func ValidateToken(provided, configured string) error {
	if configured == "" || !hmac.Equal([]byte(provided), []byte(configured)) {
		return ErrInvalidToken
	}
	return nil
}
