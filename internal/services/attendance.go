package services

import (
	"errors"
	"fmt"

	"github.com/gravadigital/poorganiser-api/internal/domain/event"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/domain/user"
	"github.com/gravadigital/poorganiser-api/internal/storage"
)

// GetAttendance returns the attendance linking the given user and event,
// or (nil, nil) when either side is unresolvable or no attendance exists.
// This is an advisory lookup, not an integrity check.
func (o *Organiser) GetAttendance(userRef, eventRef record.Ref) (*event.Attendance, error) {
	u, err := o.resolveUser(userRef)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	evt, err := o.resolveEvent(eventRef)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return nil, nil
		}
		return nil, err
	}

	matches, err := storage.ScanAs(o.store, record.KindAttendance, func(a *event.Attendance) bool {
		return a.UserID == u.ID && a.EventID == evt.ID
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// GetAttendances returns the attendances of a *user.User or *event.Event,
// ordered by id. Other argument types fail with ErrUnsupportedType.
func (o *Organiser) GetAttendances(obj any) ([]*event.Attendance, error) {
	switch v := obj.(type) {
	case *user.User:
		u, err := o.resolveUser(ref(v))
		if err != nil {
			return nil, err
		}
		return storage.ScanAs(o.store, record.KindAttendance, func(a *event.Attendance) bool {
			return a.UserID == u.ID
		})
	case *event.Event:
		evt, err := o.resolveEvent(ref(v))
		if err != nil {
			return nil, err
		}
		return storage.ScanAs(o.store, record.KindAttendance, func(a *event.Attendance) bool {
			return a.EventID == evt.ID
		})
	default:
		return nil, ErrUnsupportedType
	}
}

// CreateAttendance links a user to an event. goingStatus defaults to
// "invited" when empty and roles to an empty list. A second attendance for
// the same (user, event) pair fails with ErrDuplicateAttendance.
func (o *Organiser) CreateAttendance(userRef, eventRef record.Ref, goingStatus string, roles []string) (*event.Attendance, error) {
	u, err := o.resolveUser(userRef)
	if err != nil {
		return nil, err
	}

	evt, err := o.resolveEvent(eventRef)
	if err != nil {
		return nil, err
	}

	existing, err := storage.ScanAs(o.store, record.KindAttendance, func(a *event.Attendance) bool {
		return a.UserID == u.ID && a.EventID == evt.ID
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrDuplicateAttendance
	}

	if goingStatus == "" {
		goingStatus = event.StatusInvited
	}

	att := event.NewAttendance(u.ID, evt.ID, goingStatus, roles)
	if _, err := o.store.Insert(att); err != nil {
		return nil, fmt.Errorf("create attendance user %d event %d: %w", u.ID, evt.ID, err)
	}

	evt.AttendanceIDs.Add(att.ID)
	if err := o.store.Update(evt); err != nil {
		return nil, fmt.Errorf("link attendance %d to event %d: %w", att.ID, evt.ID, err)
	}

	u.EventsAttending.Add(evt.ID)
	if err := o.store.Update(u); err != nil {
		return nil, fmt.Errorf("link event %d to user %d: %w", evt.ID, u.ID, err)
	}

	o.log.Debug("Attendance created", "id", att.ID, "user", u.ID, "event", evt.ID, "status", goingStatus)
	return att, nil
}

// DeleteAttendance removes an attendance, pruning the event's attendance
// list and the user's attending list. The organised list is untouched.
func (o *Organiser) DeleteAttendance(r record.Ref) error {
	att, err := o.resolveAttendance(r)
	if err != nil {
		return err
	}
	return o.cascadeDelete(record.KindAttendance, att.ID)
}
