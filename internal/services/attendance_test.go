package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/poorganiser-api/internal/domain/event"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
)

func attendanceIDs(attendances []*event.Attendance) []int {
	ids := make([]int, 0, len(attendances))
	for _, a := range attendances {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestGetAttendance(t *testing.T) {
	o := newOrganiser(t)

	u1, err := o.RegisterUser("u1")
	require.NoError(t, err)
	u2, err := o.RegisterUser("u2")
	require.NoError(t, err)

	e1, err := o.CreateEvent("e1", ref(u1), "", nil)
	require.NoError(t, err)

	a1, err := o.GetAttendance(byID(u1.ID), byID(e1.ID))
	require.NoError(t, err)
	require.NotNil(t, a1)
	assert.Equal(t, u1.ID, a1.UserID)
	assert.Equal(t, e1.ID, a1.EventID)
	assert.Equal(t, event.StatusGoing, a1.GoingStatus)
	assert.Equal(t, []string{event.RoleOrganiser}, a1.Roles)

	a2, err := o.CreateAttendance(ref(u2), ref(e1), "", nil)
	require.NoError(t, err)
	got, err := o.GetAttendance(ref(u2), ref(e1))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a2.ID, got.ID)
	assert.Equal(t, event.StatusInvited, got.GoingStatus)
	assert.Empty(t, got.Roles)

	// Unresolvable sides and missing pairs are nil, not errors
	missing, err := o.GetAttendance(byID(100), byID(200))
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = o.GetAttendance(ref(u1), byID(999))
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = o.GetAttendance(record.ByName("nobody"), ref(e1))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetAttendances(t *testing.T) {
	o := newOrganiser(t)

	u1, err := o.RegisterUser("u1")
	require.NoError(t, err)
	u2, err := o.RegisterUser("u2")
	require.NoError(t, err)
	u3, err := o.RegisterUser("u3")
	require.NoError(t, err)

	e1, err := o.CreateEvent("e1", ref(u1), "", nil)
	require.NoError(t, err)

	a1, err := o.GetAttendance(ref(u1), ref(e1))
	require.NoError(t, err)

	byEvent, err := o.GetAttendances(e1)
	require.NoError(t, err)
	assert.Equal(t, []int{a1.ID}, attendanceIDs(byEvent))

	byUser, err := o.GetAttendances(u1)
	require.NoError(t, err)
	assert.Equal(t, attendanceIDs(byEvent), attendanceIDs(byUser))

	a2, err := o.CreateAttendance(ref(u2), ref(e1), "", nil)
	require.NoError(t, err)

	e2, err := o.CreateEvent("e2", ref(u2), "springfield", nil)
	require.NoError(t, err)
	a3, err := o.GetAttendance(ref(u2), ref(e2))
	require.NoError(t, err)

	byEvent, err = o.GetAttendances(e1)
	require.NoError(t, err)
	assert.Equal(t, []int{a1.ID, a2.ID}, attendanceIDs(byEvent))

	byUser, err = o.GetAttendances(u2)
	require.NoError(t, err)
	assert.Equal(t, []int{a2.ID, a3.ID}, attendanceIDs(byUser))

	a4, err := o.CreateAttendance(ref(u3), ref(e2), "", nil)
	require.NoError(t, err)
	a5, err := o.CreateAttendance(ref(u1), ref(e2), "", nil)
	require.NoError(t, err)

	byEvent, err = o.GetAttendances(e2)
	require.NoError(t, err)
	assert.Equal(t, []int{a3.ID, a4.ID, a5.ID}, attendanceIDs(byEvent))

	byUser, err = o.GetAttendances(u1)
	require.NoError(t, err)
	assert.Equal(t, []int{a1.ID, a5.ID}, attendanceIDs(byUser))

	// Only users and events are valid arguments
	_, err = o.GetAttendances(a1)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = o.GetAttendances(12345)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = o.GetAttendances("event 1")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestCreateAttendance(t *testing.T) {
	o := newOrganiser(t)

	u1, err := o.RegisterUser("u1")
	require.NoError(t, err)
	u2, err := o.RegisterUser("u2")
	require.NoError(t, err)
	u3, err := o.RegisterUser("u3")
	require.NoError(t, err)

	e1, err := o.CreateEvent("e1", ref(u1), "", nil)
	require.NoError(t, err)
	a1, err := o.GetAttendance(ref(u1), ref(e1))
	require.NoError(t, err)

	a2, err := o.CreateAttendance(ref(u2), ref(e1), "", nil)
	require.NoError(t, err)
	assert.Equal(t, u2.ID, a2.UserID)
	assert.Equal(t, e1.ID, a2.EventID)
	assert.Equal(t, event.StatusInvited, a2.GoingStatus)
	assert.Empty(t, a2.Roles)

	// Status and roles are free-form
	a3, err := o.CreateAttendance(ref(u3), ref(e1), "idk lol", []string{"hat wearer", "cook"})
	require.NoError(t, err)
	assert.Equal(t, "idk lol", a3.GoingStatus)
	assert.Equal(t, []string{"hat wearer", "cook"}, a3.Roles)

	// The event's attendance list and the users' attending lists track
	fresh2, err := o.GetUserByUsername("u2")
	require.NoError(t, err)
	assert.Equal(t, record.IDList{e1.ID}, fresh2.EventsAttending)
	assert.Empty(t, fresh2.EventsOrganised)

	evt, err := o.resolveEvent(byID(e1.ID))
	require.NoError(t, err)
	assert.Equal(t, record.IDList{a1.ID, a2.ID, a3.ID}, evt.AttendanceIDs)

	// One attendance per (user, event) pair
	_, err = o.CreateAttendance(ref(u1), ref(e1), "", nil)
	assert.ErrorIs(t, err, ErrDuplicateAttendance)

	_, err = o.CreateAttendance(ref(u3), ref(e1), "", nil)
	assert.ErrorIs(t, err, ErrDuplicateAttendance)

	// Both sides must exist
	_, err = o.CreateAttendance(ref(u1), record.Ref{}, "", nil)
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = o.CreateAttendance(ref(u1), byID(777), "", nil)
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = o.CreateAttendance(record.ByName("nonexistant user"), ref(e1), "", nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteAttendance(t *testing.T) {
	o := newOrganiser(t)

	u1, err := o.RegisterUser("u1")
	require.NoError(t, err)
	u2, err := o.RegisterUser("u2")
	require.NoError(t, err)

	e1, err := o.CreateEvent("e1", ref(u1), "", nil)
	require.NoError(t, err)
	a1, err := o.GetAttendance(ref(u1), ref(e1))
	require.NoError(t, err)

	require.NoError(t, o.DeleteAttendance(ref(a1)))

	// Still organising, no longer attending
	fresh, err := o.GetUserByUsername("u1")
	require.NoError(t, err)
	assert.Equal(t, record.IDList{e1.ID}, fresh.EventsOrganised)
	assert.Empty(t, fresh.EventsAttending)

	evt, err := o.resolveEvent(ref(e1))
	require.NoError(t, err)
	assert.Empty(t, evt.AttendanceIDs)

	a2, err := o.CreateAttendance(ref(u2), ref(e1), "", nil)
	require.NoError(t, err)

	evt, err = o.resolveEvent(ref(e1))
	require.NoError(t, err)
	assert.Equal(t, record.IDList{a2.ID}, evt.AttendanceIDs)

	require.NoError(t, o.DeleteAttendance(byID(a2.ID)))

	fresh2, err := o.GetUserByUsername("u2")
	require.NoError(t, err)
	assert.Empty(t, fresh2.EventsAttending)

	// Deleting missing attendances fails
	assert.ErrorIs(t, o.DeleteAttendance(ref(a1)), ErrAttendanceNotFound)
	assert.ErrorIs(t, o.DeleteAttendance(byID(999)), ErrAttendanceNotFound)
	assert.ErrorIs(t, o.DeleteAttendance(record.Ref{}), ErrAttendanceNotFound)
}
