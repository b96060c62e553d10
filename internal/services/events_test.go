package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/poorganiser-api/internal/domain/event"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/storage"
)

func eventIDs(events []*event.Event) []int {
	ids := make([]int, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestCreateEvent(t *testing.T) {
	o := newOrganiser(t)

	u1, err := o.RegisterUser("user_1")
	require.NoError(t, err)

	e1, err := o.CreateEvent("event 1", ref(u1), "", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, e1.ID)
	assert.Equal(t, "event 1", e1.Name)
	assert.Empty(t, e1.Location)
	assert.Nil(t, e1.Time)
	assert.Equal(t, u1.ID, e1.OwnerID)

	// The owner is automatically attending as organiser
	a1, err := o.GetAttendance(ref(u1), ref(e1))
	require.NoError(t, err)
	require.NotNil(t, a1)
	assert.Equal(t, u1.ID, a1.UserID)
	assert.Equal(t, e1.ID, a1.EventID)
	assert.Equal(t, event.StatusGoing, a1.GoingStatus)
	assert.Equal(t, []string{event.RoleOrganiser}, a1.Roles)
	assert.Equal(t, record.IDList{a1.ID}, e1.AttendanceIDs)

	// Both of the owner's event lists are updated
	fresh, err := o.GetUserByUsername("user_1")
	require.NoError(t, err)
	assert.Equal(t, record.IDList{e1.ID}, fresh.EventsOrganised)
	assert.Equal(t, record.IDList{e1.ID}, fresh.EventsAttending)

	// Location and time are carried through
	at := time.Date(2016, time.April, 1, 0, 0, 0, 0, time.UTC)
	e2, err := o.CreateEvent("events are cool", ref(u1), "not here", &at)
	require.NoError(t, err)
	assert.Equal(t, "not here", e2.Location)
	require.NotNil(t, e2.Time)
	assert.True(t, at.Equal(*e2.Time))
}

func TestCreateEventOwnerNotFound(t *testing.T) {
	o := newOrganiser(t)

	_, err := o.CreateEvent("fourth invalid event", byID(0), "", nil)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = o.CreateEvent("something", byID(1023), "blah", nil)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = o.CreateEvent("lalalalal", byID(-321), "alalala", nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateEventEmptyName(t *testing.T) {
	o := newOrganiser(t)

	u1, err := o.RegisterUser("user_1")
	require.NoError(t, err)

	_, err = o.CreateEvent("", ref(u1), "", nil)
	assert.Error(t, err)
}

func TestGetAllEvents(t *testing.T) {
	o := newOrganiser(t)

	events, err := o.GetAllEvents()
	require.NoError(t, err)
	assert.Empty(t, events)

	u1, err := o.RegisterUser("user 1")
	require.NoError(t, err)

	e1, err := o.CreateEvent("event 1", ref(u1), "", nil)
	require.NoError(t, err)
	e2, err := o.CreateEvent("event 2", ref(u1), "loc1", nil)
	require.NoError(t, err)

	yesterday := time.Now().AddDate(0, 0, -1)
	e3, err := o.CreateEvent("event 3", ref(u1), "", &yesterday)
	require.NoError(t, err)

	// Past events are still part of the full listing
	events, err = o.GetAllEvents()
	require.NoError(t, err)
	assert.Equal(t, []int{e1.ID, e2.ID, e3.ID}, eventIDs(events))
}

func TestGetCurrentEvents(t *testing.T) {
	o := newOrganiser(t)

	u1, err := o.RegisterUser("bob")
	require.NoError(t, err)

	e1, err := o.CreateEvent("event 1", ref(u1), "", nil)
	require.NoError(t, err)

	inTenDays := time.Now().AddDate(0, 0, 10)
	e2, err := o.CreateEvent("event 2", ref(u1), "", &inTenDays)
	require.NoError(t, err)

	current, err := o.GetCurrentEvents()
	require.NoError(t, err)
	assert.Equal(t, []int{e1.ID, e2.ID}, eventIDs(current))

	// Past events drop out of the current listing
	yesterday := time.Now().AddDate(0, 0, -1)
	longAgo := time.Now().AddDate(0, 0, -134)
	_, err = o.CreateEvent("event 4", ref(u1), "location 4", &yesterday)
	require.NoError(t, err)
	_, err = o.CreateEvent("event 5", ref(u1), "", &longAgo)
	require.NoError(t, err)

	current, err = o.GetCurrentEvents()
	require.NoError(t, err)
	assert.Equal(t, []int{e1.ID, e2.ID}, eventIDs(current))
}

func TestGetEventsByUser(t *testing.T) {
	o := newOrganiser(t)

	u1, err := o.RegisterUser("jane")
	require.NoError(t, err)
	u2, err := o.RegisterUser("user 2")
	require.NoError(t, err)

	events, err := o.GetEventsByUser(ref(u1))
	require.NoError(t, err)
	assert.Empty(t, events)

	e1, err := o.CreateEvent("event 1a", byID(u1.ID), "", nil)
	require.NoError(t, err)
	e2, err := o.CreateEvent("event 2a", ref(u1), "", nil)
	require.NoError(t, err)

	events, err = o.GetEventsByUser(ref(u1))
	require.NoError(t, err)
	assert.Equal(t, []int{e1.ID, e2.ID}, eventIDs(events))

	// Another user's events stay separate
	events, err = o.GetEventsByUser(byID(u2.ID))
	require.NoError(t, err)
	assert.Empty(t, events)

	e3, err := o.CreateEvent("event 1b", ref(u2), "", nil)
	require.NoError(t, err)

	events, err = o.GetEventsByUser(ref(u2))
	require.NoError(t, err)
	assert.Equal(t, []int{e3.ID}, eventIDs(events))

	// Attending someone else's event does not make it the attendee's
	_, err = o.CreateAttendance(ref(u2), ref(e1), "", nil)
	require.NoError(t, err)

	events, err = o.GetEventsByUser(ref(u2))
	require.NoError(t, err)
	assert.Equal(t, []int{e3.ID}, eventIDs(events),
		"attending a foreign event must not list it")

	// Deleting an event removes it from the listing
	require.NoError(t, o.DeleteEvent(ref(e3)))
	events, err = o.GetEventsByUser(ref(u2))
	require.NoError(t, err)
	assert.Empty(t, events)

	_, err = o.GetEventsByUser(byID(999))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetEventsByUserOrphanedEvents(t *testing.T) {
	o := newOrganiser(t)

	u1, err := o.RegisterUser("jane")
	require.NoError(t, err)
	u2, err := o.RegisterUser("user 2")
	require.NoError(t, err)

	e1, err := o.CreateEvent("event 1", ref(u1), "", nil)
	require.NoError(t, err)

	// Unregistering without deleting events leaves them ownerless, so
	// they are listed for nobody
	require.NoError(t, o.UnregisterUser(ref(u1), false))
	assert.True(t, exists(t, o, e1.ID, record.KindEvent))

	events, err := o.GetEventsByUser(ref(u2))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDeleteEvent(t *testing.T) {
	o := newOrganiser(t)

	u1, err := o.RegisterUser("user1")
	require.NoError(t, err)
	u2, err := o.RegisterUser("ThE sEcOnD uSeR")
	require.NoError(t, err)

	e1, err := o.CreateEvent("event 1", ref(u1), "", nil)
	require.NoError(t, err)
	e2, err := o.CreateEvent("two to 2 too", ref(u2), "", nil)
	require.NoError(t, err)
	e3, err := o.CreateEvent("free threes", ref(u1), "", nil)
	require.NoError(t, err)

	s1, err := o.CreateSurvey("survey 1", ref(u1), nil, ref(e1))
	require.NoError(t, err)
	s2, err := o.CreateSurvey("survey 2", ref(u1), nil, ref(e1))
	require.NoError(t, err)
	s3, err := o.CreateSurvey("survey 2", ref(u1), nil, record.Ref{})
	require.NoError(t, err)

	require.NoError(t, o.DeleteEvent(ref(e1)))

	// Owner's event lists are pruned
	fresh, err := o.GetUserByUsername("user1")
	require.NoError(t, err)
	assert.Equal(t, record.IDList{e3.ID}, fresh.EventsOrganised)
	assert.Equal(t, record.IDList{e3.ID}, fresh.EventsAttending)

	// Attendance is gone
	att, err := o.GetAttendance(ref(u1), byID(e1.ID))
	require.NoError(t, err)
	assert.Nil(t, att)

	// Attached surveys went with the event; the detached one stays
	assert.False(t, exists(t, o, s1.ID, record.KindSurvey))
	assert.False(t, exists(t, o, s2.ID, record.KindSurvey))
	assert.True(t, exists(t, o, s3.ID, record.KindSurvey))

	// Delete by id works too
	require.NoError(t, o.DeleteEvent(byID(e2.ID)))
	fresh2, err := o.GetUserByUsername("ThE sEcOnD uSeR")
	require.NoError(t, err)
	assert.Empty(t, fresh2.EventsOrganised)
	assert.Empty(t, fresh2.EventsAttending)

	require.NoError(t, o.DeleteEvent(ref(e3)))

	// Deleting twice or deleting unknown events fails
	assert.ErrorIs(t, o.DeleteEvent(ref(e1)), ErrEventNotFound)
	assert.ErrorIs(t, o.DeleteEvent(byID(103)), ErrEventNotFound)
	assert.ErrorIs(t, o.DeleteEvent(record.Ref{}), ErrEventNotFound)
}

func TestDeleteEventWithUnregisteredOwner(t *testing.T) {
	o := newOrganiser(t)

	u1, err := o.RegisterUser("user1")
	require.NoError(t, err)

	e4, err := o.CreateEvent("event_to_be_deleted", ref(u1), "", nil)
	require.NoError(t, err)

	require.NoError(t, o.UnregisterUser(ref(u1), false))
	require.NoError(t, o.DeleteEvent(ref(e4)))

	all, err := o.GetAllEvents()
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = storage.GetAs[*event.Event](o.store, e4.ID, record.KindEvent)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
