package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/poorganiser-api/internal/domain/event"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/domain/user"
	"github.com/gravadigital/poorganiser-api/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "porg_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestInsertAndGet(t *testing.T) {
	s := newTestStore(t)

	u := user.New("bob")
	id, err := s.Insert(u)
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, 1, u.ID)

	got, err := storage.GetAs[*user.User](s, id, record.KindUser)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, 1, got.ID, "stored payload should carry the assigned id")
	assert.Empty(t, got.EventsAttending)
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(7, record.KindEvent)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateRoundTrip(t *testing.T) {
	s := newTestStore(t)

	at := time.Date(2026, time.September, 12, 18, 0, 0, 0, time.UTC)
	evt := event.New("picnic", 1, "park", &at)
	_, err := s.Insert(evt)
	require.NoError(t, err)

	evt.AttendanceIDs.Add(4)
	evt.Location = "bigger park"
	require.NoError(t, s.Update(evt))

	got, err := storage.GetAs[*event.Event](s, evt.ID, record.KindEvent)
	require.NoError(t, err)
	assert.Equal(t, "bigger park", got.Location)
	assert.Equal(t, record.IDList{4}, got.AttendanceIDs)
	require.NotNil(t, got.Time)
	assert.True(t, at.Equal(*got.Time))
}

func TestUpdateNotFound(t *testing.T) {
	s := newTestStore(t)

	u := user.New("ghost")
	u.SetID(3)
	assert.ErrorIs(t, s.Update(u), storage.ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	u := user.New("bob")
	_, err := s.Insert(u)
	require.NoError(t, err)

	require.NoError(t, s.Delete(u.ID, record.KindUser))
	_, err = s.Get(u.ID, record.KindUser)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, s.Delete(u.ID, record.KindUser), storage.ErrNotFound)
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	s := newTestStore(t)

	u1 := user.New("bob")
	_, err := s.Insert(u1)
	require.NoError(t, err)
	require.NoError(t, s.Delete(u1.ID, record.KindUser))

	u2 := user.New("jane")
	id, err := s.Insert(u2)
	require.NoError(t, err)
	assert.Equal(t, 2, id, "AUTOINCREMENT must not reuse deleted ids")
}

func TestScanOrdersByID(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"c", "a", "b"} {
		_, err := s.Insert(user.New(name))
		require.NoError(t, err)
	}

	users, err := storage.ScanAs[*user.User](s, record.KindUser, nil)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "c", users[0].Username)
	assert.Equal(t, "b", users[2].Username)
}

func TestScanWithPredicate(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"bob", "jane"} {
		_, err := s.Insert(user.New(name))
		require.NoError(t, err)
	}

	users, err := storage.ScanAs(s, record.KindUser, func(u *user.User) bool {
		return u.Username == "jane"
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 2, users[0].ID)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := NewStore(path)
	require.NoError(t, err)
	u := user.New("bob")
	_, err = s.Insert(u)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := NewStore(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := storage.GetAs[*user.User](s2, u.ID, record.KindUser)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
}
