package kvstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasury/internal/kvstore"
	"treasury/internal/logger"
	"treasury/internal/testutil"
)

func init() {
	logger.Init("test")
}

type record struct {
	ID    string   `json:"id"`
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

// stores runs fn against every medium available without external services.
func stores(t *testing.T, fn func(t *testing.T, s *kvstore.Store)) {
	t.Run("memory", func(t *testing.T) {
		s, _ := testutil.NewMemoryStore(t)
		fn(t, s)
	})
	t.Run("sqlite", func(t *testing.T) {
		s, _ := testutil.NewGormStore(t)
		fn(t, s)
	})
}

func TestStore_RoundTrip(t *testing.T) {
	stores(t, func(t *testing.T, s *kvstore.Store) {
		in := []record{{ID: "a", Tags: []string{"x"}, Count: 2}, {ID: "b", Tags: []string{}}}
		s.Set("records", in)

		out := kvstore.Get(s, "records", []record(nil))
		assert.Equal(t, in, out)
	})
}

func TestStore_Overwrite(t *testing.T) {
	stores(t, func(t *testing.T, s *kvstore.Store) {
		s.Set("k", "first")
		s.Set("k", "second")

		assert.Equal(t, "second", kvstore.Get(s, "k", ""))
	})
}

func TestStore_MissingKeyReturnsDefault(t *testing.T) {
	stores(t, func(t *testing.T, s *kvstore.Store) {
		def := []record{{ID: "seed"}}
		assert.Equal(t, def, kvstore.Get(s, "absent", def))

		_, ok := s.Raw("absent")
		assert.False(t, ok)
	})
}

func TestStore_Remove(t *testing.T) {
	stores(t, func(t *testing.T, s *kvstore.Store) {
		s.Set("session", "admin-user")
		s.Remove("session")
		s.Remove("session")

		assert.Equal(t, "none", kvstore.Get(s, "session", "none"))
	})
}

func TestStore_CorruptValueReturnsDefault(t *testing.T) {
	s, medium := testutil.NewMemoryStore(t)
	medium.Put("records", "{not json")

	out := kvstore.Get(s, "records", []record{})
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestStore_ReadFailureReturnsDefault(t *testing.T) {
	s, medium := testutil.NewMemoryStore(t)
	s.Set("k", 42)
	medium.ReadErr = errors.New("medium unavailable")

	assert.Equal(t, -1, kvstore.Get(s, "k", -1))
}

func TestStore_WriteFailureIsSwallowed(t *testing.T) {
	s, medium := testutil.NewMemoryStore(t)
	s.Set("k", "kept")
	medium.WriteErr = errors.New("quota exceeded")

	assert.NotPanics(t, func() { s.Set("k", "lost") })
	assert.NotPanics(t, func() { s.Remove("k") })

	medium.WriteErr = nil
	assert.Equal(t, "kept", kvstore.Get(s, "k", ""))
}

func TestStore_UnencodableValueIsDropped(t *testing.T) {
	s, medium := testutil.NewMemoryStore(t)

	s.Set("fn", func() {})

	assert.Equal(t, 0, medium.Len())
}

func TestMemoryMedium_NotFound(t *testing.T) {
	m := kvstore.NewMemoryMedium()

	_, err := m.Read(context.Background(), "nope")
	require.ErrorIs(t, err, kvstore.ErrNotFound)
}
