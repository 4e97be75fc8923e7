// Package otp implements the contact-verification OTP session store: a
// keyed store of ephemeral, single-use, time-bounded challenge sessions
// issued while verifying a contact email or phone during onboarding.
//
// This flow is distinct from the generic auth verify-otp endpoint, which
// recognizes a single magic code with no per-request-id state.
package otp

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/extramock/extramock/internal/id"
)

// MagicCode is the expected code for every issued session. A mock never
// delivers real email or SMS, so the code is fixed and documented.
const MagicCode = "123456"

// Session lifetime and advisory resend cooldown.
const (
	SessionTTL    = 5 * time.Minute
	ResendAdvisor = 90 * time.Second
)

// SubjectType identifies what kind of contact a session verifies.
type SubjectType string

// Subject types.
const (
	SubjectEmail SubjectType = "email"
	SubjectPhone SubjectType = "phone"
)

// Store errors. Verify deliberately conflates "no such session", "subject
// mismatch" and "wrong code" into ErrInvalidOTP so callers cannot probe
// which part was wrong.
var (
	ErrValidation   = errors.New("missing required field")
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidPhone = errors.New("invalid phone format")
	ErrInvalidOTP   = errors.New("invalid otp")
	ErrExpired      = errors.New("otp expired")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// Session is one issued challenge awaiting verification.
type Session struct {
	RequestID    string
	SubjectType  SubjectType
	SubjectValue string
	Code         string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// ResendAllowedAt returns the advisory timestamp before which clients are
// asked (but not forced) to hold off re-requesting a code.
func (s *Session) ResendAllowedAt() time.Time {
	return s.CreatedAt.Add(ResendAdvisor)
}

// Store holds active OTP sessions keyed by request id. Safe for concurrent
// use; the lookup-check-delete sequence in Verify runs under one lock so a
// single-use code cannot be consumed twice by racing verify attempts.
//
// Sessions that are never verified and never re-checked after expiry stay in
// the map; acceptable for a best-effort mock (a production port would sweep).
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewStore creates a Store using the wall clock.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock creates a Store with an injected clock for expiry tests.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      now,
	}
}

// Issue validates the subject and creates a session with the magic expected
// code and a 5-minute TTL. The request id is derived deterministically from
// the subject value, so re-issuing for the same contact replaces the
// previous session rather than leaking one.
func (s *Store) Issue(subjectType SubjectType, subjectValue string) (*Session, error) {
	subjectValue = strings.TrimSpace(subjectValue)
	if subjectValue == "" {
		return nil, ErrValidation
	}

	switch subjectType {
	case SubjectEmail:
		if !emailPattern.MatchString(subjectValue) {
			return nil, ErrInvalidEmail
		}
	case SubjectPhone:
		if !phonePattern.MatchString(subjectValue) {
			return nil, ErrInvalidPhone
		}
	default:
		return nil, ErrValidation
	}

	now := s.now()
	sess := &Session{
		RequestID:    id.OTPRequest(subjectValue),
		SubjectType:  subjectType,
		SubjectValue: subjectValue,
		Code:         MagicCode,
		CreatedAt:    now,
		ExpiresAt:    now.Add(SessionTTL),
	}

	s.mu.Lock()
	s.sessions[sess.RequestID] = sess
	s.mu.Unlock()

	return sess, nil
}

// Verify resolves a verification attempt against the stored session.
//
// Outcomes:
//   - blank field                 → ErrValidation, state untouched
//   - unknown id / subject mismatch / wrong code → ErrInvalidOTP; a wrong
//     code does NOT consume the session, so the client may retry until expiry
//   - expired                     → ErrExpired, session deleted
//   - match                       → session deleted (single-use), returned
func (s *Store) Verify(requestID string, subjectType SubjectType, subjectValue, code string) (*Session, error) {
	requestID = strings.TrimSpace(requestID)
	subjectValue = strings.TrimSpace(subjectValue)
	code = strings.TrimSpace(code)
	if requestID == "" || subjectValue == "" || code == "" || subjectType == "" {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[requestID]
	if !ok || sess.SubjectType != subjectType || sess.SubjectValue != subjectValue {
		return nil, ErrInvalidOTP
	}

	if s.now().After(sess.ExpiresAt) {
		delete(s.sessions, requestID)
		return nil, ErrExpired
	}

	if code != sess.Code {
		return nil, ErrInvalidOTP
	}

	delete(s.sessions, requestID)
	return sess, nil
}

// Count returns the number of active (unverified, unswept) sessions.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
