package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue(t *testing.T) {
	t.Parallel()

	t.Run("email subject", func(t *testing.T) {
		t.Parallel()
		s := NewStore()

		sess, err := s.Issue(SubjectEmail, "admin@hotelname.com")
		require.NoError(t, err)
		assert.Equal(t, "otpreq_61646d696e40", sess.RequestID)
		assert.Equal(t, MagicCode, sess.Code)
		assert.Equal(t, SessionTTL, sess.ExpiresAt.Sub(sess.CreatedAt))
		assert.Equal(t, 1, s.Count())
	})

	t.Run("phone subject", func(t *testing.T) {
		t.Parallel()
		s := NewStore()

		sess, err := s.Issue(SubjectPhone, "+919876543210")
		require.NoError(t, err)
		assert.Equal(t, SubjectPhone, sess.SubjectType)
		assert.Equal(t, "+919876543210", sess.SubjectValue)
	})

	t.Run("deterministic request id", func(t *testing.T) {
		t.Parallel()
		s := NewStore()

		first, err := s.Issue(SubjectEmail, "owner@example.com")
		require.NoError(t, err)
		second, err := s.Issue(SubjectEmail, "owner@example.com")
		require.NoError(t, err)

		assert.Equal(t, first.RequestID, second.RequestID)
		assert.Equal(t, 1, s.Count(), "re-issue replaces the previous session")
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()
		s := NewStore()

		_, err := s.Issue(SubjectEmail, "not-an-email")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("invalid phone", func(t *testing.T) {
		t.Parallel()
		s := NewStore()

		_, err := s.Issue(SubjectPhone, "12345")
		assert.ErrorIs(t, err, ErrInvalidPhone)

		_, err = s.Issue(SubjectPhone, "+91 98765 43210")
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("blank value", func(t *testing.T) {
		t.Parallel()
		s := NewStore()

		_, err := s.Issue(SubjectEmail, "   ")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown subject type", func(t *testing.T) {
		t.Parallel()
		s := NewStore()

		_, err := s.Issue(SubjectType("fax"), "admin@hotelname.com")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("happy path consumes session", func(t *testing.T) {
		t.Parallel()
		s := NewStore()
		issued, err := s.Issue(SubjectEmail, "admin@hotelname.com")
		require.NoError(t, err)

		sess, err := s.Verify(issued.RequestID, SubjectEmail, "admin@hotelname.com", MagicCode)
		require.NoError(t, err)
		assert.Equal(t, issued.RequestID, sess.RequestID)
		assert.Equal(t, 0, s.Count())

		// single-use: a second verify against the same id fails
		_, err = s.Verify(issued.RequestID, SubjectEmail, "admin@hotelname.com", MagicCode)
		assert.ErrorIs(t, err, ErrInvalidOTP)
	})

	t.Run("wrong code does not consume", func(t *testing.T) {
		t.Parallel()
		s := NewStore()
		issued, err := s.Issue(SubjectEmail, "admin@hotelname.com")
		require.NoError(t, err)

		_, err = s.Verify(issued.RequestID, SubjectEmail, "admin@hotelname.com", "000000")
		assert.ErrorIs(t, err, ErrInvalidOTP)
		assert.Equal(t, 1, s.Count())

		// correct code still works afterwards
		_, err = s.Verify(issued.RequestID, SubjectEmail, "admin@hotelname.com", MagicCode)
		require.NoError(t, err)
	})

	t.Run("subject mismatch", func(t *testing.T) {
		t.Parallel()
		s := NewStore()
		issued, err := s.Issue(SubjectEmail, "admin@hotelname.com")
		require.NoError(t, err)

		_, err = s.Verify(issued.RequestID, SubjectEmail, "other@hotelname.com", MagicCode)
		assert.ErrorIs(t, err, ErrInvalidOTP)

		_, err = s.Verify(issued.RequestID, SubjectPhone, "admin@hotelname.com", MagicCode)
		assert.ErrorIs(t, err, ErrInvalidOTP)
	})

	t.Run("unknown request id", func(t *testing.T) {
		t.Parallel()
		s := NewStore()

		_, err := s.Verify("otpreq_ffffffffffff", SubjectEmail, "admin@hotelname.com", MagicCode)
		assert.ErrorIs(t, err, ErrInvalidOTP)
	})

	t.Run("blank fields", func(t *testing.T) {
		t.Parallel()
		s := NewStore()

		_, err := s.Verify("", SubjectEmail, "admin@hotelname.com", MagicCode)
		assert.ErrorIs(t, err, ErrValidation)
		_, err = s.Verify("otpreq_61646d696e40", SubjectEmail, "", MagicCode)
		assert.ErrorIs(t, err, ErrValidation)
		_, err = s.Verify("otpreq_61646d696e40", SubjectEmail, "admin@hotelname.com", "  ")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("expired session is deleted", func(t *testing.T) {
		t.Parallel()
		clock := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
		s := NewStoreWithClock(func() time.Time { return clock })

		issued, err := s.Issue(SubjectEmail, "admin@hotelname.com")
		require.NoError(t, err)

		clock = clock.Add(SessionTTL + time.Second)
		_, err = s.Verify(issued.RequestID, SubjectEmail, "admin@hotelname.com", MagicCode)
		assert.ErrorIs(t, err, ErrExpired)
		assert.Equal(t, 0, s.Count())

		// gone for good: a retry now reads as invalid, not expired
		_, err = s.Verify(issued.RequestID, SubjectEmail, "admin@hotelname.com", MagicCode)
		assert.ErrorIs(t, err, ErrInvalidOTP)
	})

	t.Run("code is trimmed", func(t *testing.T) {
		t.Parallel()
		s := NewStore()
		issued, err := s.Issue(SubjectEmail, "admin@hotelname.com")
		require.NoError(t, err)

		_, err = s.Verify(issued.RequestID, SubjectEmail, "admin@hotelname.com", " 123456 ")
		require.NoError(t, err)
	})
}
