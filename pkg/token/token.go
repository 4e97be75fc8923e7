// Package token mints the throwaway JWTs returned by the auth endpoints.
// Tokens are signed with a fixed development secret so clients can decode
// and inspect claims, but they carry no real authority.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/extramock/extramock/pkg/template"
)

const issuer = "extramock"

// devSecret signs every token. Fixed on purpose; this is a mock.
var devSecret = []byte("extramock-dev-secret-do-not-use-in-production")

// Minter issues signed tokens with lifetimes matching the advertised
// expiry placeholders.
type Minter struct {
	now func() time.Time
}

// NewMinter creates a Minter using the wall clock.
func NewMinter() *Minter {
	return &Minter{now: time.Now}
}

// NewMinterWithClock creates a Minter with an injected clock for tests.
func NewMinterWithClock(now func() time.Time) *Minter {
	return &Minter{now: now}
}

func (m *Minter) mint(subject, tokenType string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"iss":        issuer,
		"sub":        subject,
		"token_type": tokenType,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(devSecret)
}

// AccessToken mints a 60-minute access token for the subject.
func (m *Minter) AccessToken(subject string) (string, error) {
	return m.mint(subject, "access", template.AccessTokenExpiry)
}

// RefreshToken mints a 30-day refresh token for the subject.
func (m *Minter) RefreshToken(subject string) (string, error) {
	return m.mint(subject, "refresh", 30*24*time.Hour)
}

// VerificationToken mints the 10-minute token issued after a successful
// reset-password OTP verification.
func (m *Minter) VerificationToken(subject string) (string, error) {
	return m.mint(subject, "verification", template.VerificationExpiry)
}
