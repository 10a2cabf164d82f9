package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock for lease tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type record struct {
	Name  string
	Value int64
}

func TestMemStore_RoundTrip(t *testing.T) {
	s := NewMemStore()

	require.NoError(t, s.Data().Put("k", record{Name: "a", Value: 42}))

	var out record
	ok, err := s.Data().Get("k", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, record{Name: "a", Value: 42}, out)

	// The two classes are separate namespaces.
	ok, err = s.Config().Get("k", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore_GetAbsent(t *testing.T) {
	s := NewMemStore()
	var out record
	ok, err := s.Data().Get("missing", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore_Delete(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.Data().Put("k", int64(1)))
	require.NoError(t, s.Data().Delete("k"))

	var out int64
	ok, err := s.Data().Get("k", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	require.NoError(t, s.Data().Delete("k"))
}

func TestMemStore_LeaseExpiry(t *testing.T) {
	clock := newFakeClock()
	s := NewMemStoreWithClock(clock.now, 30*time.Hour, 7*time.Hour)

	require.NoError(t, s.Config().Put("c", int64(1)))
	require.NoError(t, s.Data().Put("d", int64(2)))

	// Past the data window but inside the config window.
	clock.advance(8 * time.Hour)

	var out int64
	ok, err := s.Data().Get("d", &out)
	require.NoError(t, err)
	assert.False(t, ok, "data lease should have lapsed")

	ok, err = s.Config().Get("c", &out)
	require.NoError(t, err)
	assert.True(t, ok, "config lease should still hold")

	// Past the config window too.
	clock.advance(31 * time.Hour)
	ok, err = s.Config().Get("c", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore_GetRenewsLease(t *testing.T) {
	clock := newFakeClock()
	s := NewMemStoreWithClock(clock.now, 30*time.Hour, 7*time.Hour)

	require.NoError(t, s.Data().Put("k", int64(7)))

	// Read just before expiry, repeatedly. Each read pushes the deadline
	// out, so the record survives far beyond the original window.
	var out int64
	for i := 0; i < 5; i++ {
		clock.advance(6 * time.Hour)
		ok, err := s.Data().Get("k", &out)
		require.NoError(t, err)
		require.True(t, ok, "read %d should renew the lease", i)
	}
	assert.Equal(t, int64(7), out)
}

func TestMemStore_PutRenewsLease(t *testing.T) {
	clock := newFakeClock()
	s := NewMemStoreWithClock(clock.now, 30*time.Hour, 7*time.Hour)

	require.NoError(t, s.Data().Put("k", int64(1)))
	clock.advance(6 * time.Hour)
	require.NoError(t, s.Data().Put("k", int64(2)))
	clock.advance(6 * time.Hour)

	// 12h after the first write, but only 6h after the second.
	var out int64
	ok, err := s.Data().Get("k", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), out)
}
