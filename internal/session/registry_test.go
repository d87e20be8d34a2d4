package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()

	s := r.Register()
	require.NotEmpty(t, s.ID)

	found, ok := r.Lookup(s.ID)
	assert.True(t, ok)
	assert.Same(t, s, found)
	assert.Equal(t, 1, r.Count())
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Lookup("never-issued")
	assert.False(t, ok)
}

func TestRegistry_DistinctIdentifiers(t *testing.T) {
	r := NewRegistry()

	a := r.Register()
	b := r.Register()

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, r.Count())
}

func TestRegistry_RemoveIsIdempotent(t *testing.T) {
	r := NewRegistry()

	s := r.Register()
	r.Remove(s.ID)
	assert.Equal(t, 0, r.Count())

	// Removing again, or removing an id that never existed, must not panic
	r.Remove(s.ID)
	r.Remove("never-issued")
	assert.Equal(t, 0, r.Count())

	_, ok := r.Lookup(s.ID)
	assert.False(t, ok)
}

func TestSession_SendAndReceive(t *testing.T) {
	r := NewRegistry()
	s := r.Register()

	ok := s.Send([]byte(`{"jsonrpc":"2.0"}`))
	require.True(t, ok)

	data := <-s.Events()
	assert.JSONEq(t, `{"jsonrpc":"2.0"}`, string(data))
}

func TestSession_SendAfterCloseIsDiscarded(t *testing.T) {
	r := NewRegistry()
	s := r.Register()
	r.Remove(s.ID)

	assert.False(t, s.Send([]byte("late response")))
}

func TestSession_SendDropsWhenQueueFull(t *testing.T) {
	s := newSession()
	defer s.Close()

	for i := 0; i < EventQueueSize; i++ {
		require.True(t, s.Send([]byte(fmt.Sprintf("event %d", i))))
	}

	// Queue is full and nothing is draining it
	assert.False(t, s.Send([]byte("overflow")))
}

func TestSession_CloseTwice(t *testing.T) {
	s := newSession()
	s.Close()
	assert.NotPanics(t, func() { s.Close() })
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := r.Register()
			_, ok := r.Lookup(s.ID)
			assert.True(t, ok)
			r.Remove(s.ID)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, r.Count())
}
