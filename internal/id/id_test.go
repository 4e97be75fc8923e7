package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOTPRequest(t *testing.T) {
	t.Parallel()

	t.Run("deterministic for the same subject", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, OTPRequest("a@b.com"), OTPRequest("a@b.com"))
	})

	t.Run("matches the hex derivation", func(t *testing.T) {
		t.Parallel()
		// "admin@hotelname.com" -> hex "61646d696e40..." truncated to 12 chars
		assert.Equal(t, "otpreq_61646d696e40", OTPRequest("admin@hotelname.com"))
	})

	t.Run("short subjects keep the full encoding", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "otpreq_614062", OTPRequest("a@b"))
	})
}

func TestUser(t *testing.T) {
	t.Parallel()

	a := User("a@b.com")
	assert.Equal(t, a, User("a@b.com"))
	assert.NotEqual(t, a, User("c@d.com"))
	assert.Len(t, a, len("usr_")+12)
}

func TestRoom(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "rm_001", Room(1))
	assert.Equal(t, "rm_042", Room(42))
	assert.Equal(t, "rm_1000", Room(1000))
}
