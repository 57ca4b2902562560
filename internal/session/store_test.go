package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateAndGet(t *testing.T) {
	s := NewStore(newService(t), time.Minute)

	id, ctrl := s.Create()
	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Same(t, ctrl, got)

	_, ok = s.Get("not-a-uuid")
	assert.False(t, ok)
	_, ok = s.Get("8f14e45f-ceea-4a6e-9f3c-5d1f2b7a9c01")
	assert.False(t, ok)
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	svc := newService(t)
	s := NewStore(svc, time.Minute)

	_, a := s.Create()
	_, b := s.Create()
	require.NoError(t, a.Fire(ShareNotes))
	note, _ := svc.Lookup(1)
	b.Select(note)

	assert.Equal(t, Authoring, a.State())
	assert.Equal(t, Browsing, b.State())
	_, ok := a.Selection()
	assert.False(t, ok)
}

func TestStore_Sweep(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	s := NewStore(newService(t), 30*time.Minute)
	s.now = func() time.Time { return now }

	stale, _ := s.Create()
	now = now.Add(20 * time.Minute)
	fresh, _ := s.Create()
	now = now.Add(15 * time.Minute)

	assert.Equal(t, 1, s.Sweep())
	_, ok := s.Get(stale)
	assert.False(t, ok)
	_, ok = s.Get(fresh)
	assert.True(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestStore_SweepDisabled(t *testing.T) {
	s := NewStore(newService(t), 0)
	s.Create()
	assert.Equal(t, 0, s.Sweep())
	assert.Equal(t, 1, s.Len())
}
