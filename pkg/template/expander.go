// Package template expands symbolic timestamp placeholders in response
// body templates. Placeholders are stored in the catalog as quoted string
// values (e.g. "__OTP_EXPIRES__") and rewritten at response time into
// concrete timestamps relative to "now", so bodies never persist a
// placeholder past the send.
package template

import (
	"strings"
	"time"
)

// Placeholder offsets relative to response time.
const (
	OTPExpiry          = 5 * time.Minute
	AccessTokenExpiry  = 60 * time.Minute
	VerificationExpiry = 10 * time.Minute
	ResendCooldown     = 90 * time.Second
)

// Placeholder tokens as they appear in catalog bodies.
const (
	PlaceholderOTPExpires          = "__OTP_EXPIRES__"
	PlaceholderAccessExpires       = "__ACCESS_EXPIRES__"
	PlaceholderVerificationExpires = "__VERIFICATION_EXPIRES__"
	PlaceholderResendAfter         = "__RESEND_AFTER__"
)

var offsets = map[string]time.Duration{
	PlaceholderOTPExpires:          OTPExpiry,
	PlaceholderAccessExpires:       AccessTokenExpiry,
	PlaceholderVerificationExpires: VerificationExpiry,
	PlaceholderResendAfter:         ResendCooldown,
}

// Expander rewrites symbolic timestamp placeholders into concrete values.
type Expander struct {
	now func() time.Time
}

// New creates an Expander using the wall clock.
func New() *Expander {
	return &Expander{now: time.Now}
}

// NewWithClock creates an Expander with an injected clock for tests.
func NewWithClock(now func() time.Time) *Expander {
	return &Expander{now: now}
}

// Expand replaces every known placeholder in body with a quoted RFC3339
// millisecond timestamp computed from a single "now" sample, so all
// placeholders in one response agree on the base time. Bodies without
// placeholders are returned unchanged.
func (e *Expander) Expand(body []byte) []byte {
	s := string(body)
	if !strings.Contains(s, "__") {
		return body
	}

	now := e.now()
	for token, offset := range offsets {
		quoted := `"` + token + `"`
		if !strings.Contains(s, quoted) {
			continue
		}
		stamp := `"` + Format(now.Add(offset)) + `"`
		s = strings.ReplaceAll(s, quoted, stamp)
	}
	return []byte(s)
}

// Format renders a timestamp the way the API emits all timestamps:
// UTC RFC3339 with millisecond precision.
func Format(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
