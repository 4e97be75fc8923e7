package requestlog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	t.Run("newest first", func(t *testing.T) {
		t.Parallel()
		s := NewMemoryStore()
		s.Log("POST", "/api/onboarding/auth/login", []byte(`{"email":"a@b.com"}`))
		s.Log("GET", "/api/onboarding/properties/hotel-search", nil)

		entries := s.List()
		require.Len(t, entries, 2)
		assert.Equal(t, "GET", entries[0].Method)
		assert.Equal(t, "POST", entries[1].Method)
		assert.NotEmpty(t, entries[1].ID)
		assert.JSONEq(t, `{"email":"a@b.com"}`, string(entries[1].Body))
	})

	t.Run("evicts oldest at capacity", func(t *testing.T) {
		t.Parallel()
		s := NewMemoryStoreWithCapacity(3)
		for i := 0; i < 5; i++ {
			s.Log("POST", fmt.Sprintf("/req/%d", i), nil)
		}

		entries := s.List()
		require.Len(t, entries, 3)
		assert.Equal(t, "/req/4", entries[0].URL)
		assert.Equal(t, "/req/2", entries[2].URL)
		assert.Equal(t, 3, s.Count())
	})

	t.Run("non-json body is dropped", func(t *testing.T) {
		t.Parallel()
		s := NewMemoryStore()
		s.Log("POST", "/x", []byte("not json"))

		entries := s.List()
		require.Len(t, entries, 1)
		assert.Nil(t, entries[0].Body)
	})

	t.Run("clear", func(t *testing.T) {
		t.Parallel()
		s := NewMemoryStore()
		s.Log("POST", "/x", nil)
		s.Clear()
		assert.Zero(t, s.Count())
		assert.Empty(t, s.List())
	})
}
