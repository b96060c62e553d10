package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/storage"
	"github.com/gravadigital/poorganiser-api/internal/storage/memory"
)

func newOrganiser(t *testing.T) *Organiser {
	t.Helper()
	return New(memory.NewStore())
}

// exists reports whether a record of the given kind is still stored
func exists(t *testing.T, o *Organiser, id int, kind record.Kind) bool {
	t.Helper()
	_, err := o.store.Get(id, kind)
	if err == nil {
		return true
	}
	require.ErrorIs(t, err, storage.ErrNotFound)
	return false
}

func TestGetOwner(t *testing.T) {
	o := newOrganiser(t)

	u1, err := o.RegisterUser("User 1")
	require.NoError(t, err)
	u2, err := o.RegisterUser("u2")
	require.NoError(t, err)
	u3, err := o.RegisterUser("3rd")
	require.NoError(t, err)

	e1, err := o.CreateEvent("event 1", ref(u1), "", nil)
	require.NoError(t, err)
	e2, err := o.CreateEvent("2nd event", ref(u2), "lol world", nil)
	require.NoError(t, err)

	owner, err := o.GetOwner(e1)
	require.NoError(t, err)
	assert.Equal(t, u1.ID, owner.ID)

	owner, err = o.GetOwner(e2)
	require.NoError(t, err)
	assert.Equal(t, u2.ID, owner.ID)

	s1, err := o.CreateSurvey("s1", ref(u2), nil, record.Ref{})
	require.NoError(t, err)
	s2, err := o.CreateSurvey("survey 2", ref(u3), nil, record.Ref{})
	require.NoError(t, err)

	owner, err = o.GetOwner(s1)
	require.NoError(t, err)
	assert.Equal(t, u2.ID, owner.ID)

	owner, err = o.GetOwner(s2)
	require.NoError(t, err)
	assert.Equal(t, u3.ID, owner.ID)

	q1, err := o.CreateQuestion(ref(u3), "question?", "free", record.Ref{})
	require.NoError(t, err)
	q2, err := o.CreateQuestion(ref(u1), "question?", "free", ref(s1))
	require.NoError(t, err)

	owner, err = o.GetOwner(q1)
	require.NoError(t, err)
	assert.Equal(t, u3.ID, owner.ID)

	owner, err = o.GetOwner(q2)
	require.NoError(t, err)
	assert.Equal(t, u1.ID, owner.ID)
}

func TestGetOwnerUnsupportedTypes(t *testing.T) {
	o := newOrganiser(t)

	u, err := o.RegisterUser("User 1")
	require.NoError(t, err)

	_, err = o.GetOwner(u)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = o.GetOwner("lalala")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = o.GetOwner(3012)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
