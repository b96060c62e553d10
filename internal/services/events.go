package services

import (
	"fmt"
	"time"

	"github.com/gravadigital/poorganiser-api/internal/domain/event"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/storage"
)

// CreateEvent creates an event owned by the given user. The owner is
// automatically made an attendee with status "going" and the organiser
// role, and the event is appended to both of the owner's event lists.
// Location may be empty and at may be nil for an undated event.
func (o *Organiser) CreateEvent(name string, owner record.Ref, location string, at *time.Time) (*event.Event, error) {
	if err := o.eventValidator.ValidateEventName(name); err != nil {
		return nil, err
	}

	u, err := o.resolveUser(owner)
	if err != nil {
		return nil, err
	}

	evt := event.New(name, u.ID, location, at)
	if _, err := o.store.Insert(evt); err != nil {
		return nil, fmt.Errorf("create event %q: %w", name, err)
	}

	att := event.NewAttendance(u.ID, evt.ID, event.StatusGoing, []string{event.RoleOrganiser})
	if _, err := o.store.Insert(att); err != nil {
		return nil, fmt.Errorf("create organiser attendance for event %d: %w", evt.ID, err)
	}

	evt.AttendanceIDs.Add(att.ID)
	if err := o.store.Update(evt); err != nil {
		return nil, fmt.Errorf("link attendance to event %d: %w", evt.ID, err)
	}

	u.EventsOrganised.Add(evt.ID)
	u.EventsAttending.Add(evt.ID)
	if err := o.store.Update(u); err != nil {
		return nil, fmt.Errorf("link event %d to user %d: %w", evt.ID, u.ID, err)
	}

	o.log.Info("Event created", "id", evt.ID, "name", name, "owner", u.ID)
	return evt, nil
}

// GetAllEvents returns every event, ordered by id
func (o *Organiser) GetAllEvents() ([]*event.Event, error) {
	return storage.ScanAs[*event.Event](o.store, record.KindEvent, nil)
}

// GetCurrentEvents returns events that are undated or scheduled on or
// after today, ordered by id.
func (o *Organiser) GetCurrentEvents() ([]*event.Event, error) {
	today := time.Now()
	return storage.ScanAs(o.store, record.KindEvent, func(e *event.Event) bool {
		return e.IsCurrent(today)
	})
}

// GetEventsByUser returns the events the given user owns, ordered by id.
// Attending someone else's event does not list it here.
func (o *Organiser) GetEventsByUser(r record.Ref) ([]*event.Event, error) {
	u, err := o.resolveUser(r)
	if err != nil {
		return nil, err
	}

	return storage.ScanAs(o.store, record.KindEvent, func(e *event.Event) bool {
		return e.OwnerID == u.ID
	})
}

// DeleteEvent removes an event together with its attendances and attached
// surveys, pruning the owner's event lists.
func (o *Organiser) DeleteEvent(r record.Ref) error {
	evt, err := o.resolveEvent(r)
	if err != nil {
		return err
	}

	if err := o.cascadeDelete(record.KindEvent, evt.ID); err != nil {
		return err
	}

	o.log.Info("Event deleted", "id", evt.ID, "name", evt.Name)
	return nil
}
