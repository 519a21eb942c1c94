// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenNotJWT is returned by [Token.Claims] when the token is opaque and
// carries no inspectable claims.
var ErrTokenNotJWT = errors.New("token is not a JWT")

// Token is the bearer credential issued by the journal service on login.
//
// The client treats SignedString as opaque: it is presented verbatim in the
// Authorization header. When the service happens to issue a JWT, the
// unverified claims can be read via [Token.Claims] for display purposes only.
// Signature verification is the server's responsibility.
type Token struct {
	// SignedString is the raw value returned as access_token.
	SignedString string `json:"-"`
}

// NewToken wraps a raw access token, trimming surrounding whitespace.
func NewToken(raw string) Token {
	return Token{SignedString: strings.TrimSpace(raw)}
}

// IsZero reports whether the token is absent.
func (t Token) IsZero() bool {
	return t.SignedString == ""
}

// String returns the raw token. It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// BearerHeader returns the Authorization header value for the token.
func (t Token) BearerHeader() string {
	return "Bearer " + t.SignedString
}

// TokenClaims is the subset of registered JWT claims the client displays.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// Claims parses the token as a JWT without verifying its signature and
// returns the subject and expiry. Returns [ErrTokenNotJWT] for opaque
// tokens.
func (t Token) Claims() (TokenClaims, error) {
	if strings.Count(t.SignedString, ".") != 2 {
		return TokenClaims{}, ErrTokenNotJWT
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(t.SignedString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrTokenNotJWT, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrTokenNotJWT
	}

	var out TokenClaims
	// flask-jwt-extended puts the identity into "sub"; a numeric or missing
	// subject is not an error for display.
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	} else if raw, ok := claims["sub"]; ok {
		out.Subject = fmt.Sprint(raw)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}
