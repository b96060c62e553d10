package services

import (
	"fmt"

	"github.com/gravadigital/poorganiser-api/internal/domain/event"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/domain/survey"
	"github.com/gravadigital/poorganiser-api/internal/domain/user"
	"github.com/gravadigital/poorganiser-api/internal/storage"
)

// RegisterUser creates a new user with the given username. Usernames are
// unique; registering a taken one fails with ErrUserExists.
func (o *Organiser) RegisterUser(username string) (*user.User, error) {
	if err := o.userValidator.ValidateUsername(username); err != nil {
		return nil, err
	}

	existing, err := o.lookupUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	u := user.New(username)
	if _, err := o.store.Insert(u); err != nil {
		return nil, fmt.Errorf("register user %q: %w", username, err)
	}

	o.log.Info("User registered", "id", u.ID, "username", username)
	return u, nil
}

// GetUserByUsername returns the user with the given username, or (nil, nil)
// when no such user exists. This is an advisory lookup, not an integrity
// check.
func (o *Organiser) GetUserByUsername(username string) (*user.User, error) {
	return o.lookupUsername(username)
}

// UnregisterUser removes a user and everything only they hold together:
// their attendances, their surveys and their questions. Events they
// organise are cascade-deleted when deleteEvents is set; otherwise the
// events survive ownerless. Responses the user gave to other users'
// questions are kept.
func (o *Organiser) UnregisterUser(r record.Ref, deleteEvents bool) error {
	u, err := o.resolveUser(r)
	if err != nil {
		return err
	}

	for _, eventID := range u.EventsOrganised.Clone() {
		if deleteEvents {
			if err := o.cascadeDelete(record.KindEvent, eventID); err != nil {
				return err
			}
			continue
		}

		rec, err := o.getIfExists(eventID, record.KindEvent)
		if err != nil {
			return err
		}
		if rec == nil {
			continue
		}
		evt := rec.(*event.Event)
		evt.OwnerID = 0
		if err := o.store.Update(evt); err != nil {
			return fmt.Errorf("orphan event %d: %w", eventID, err)
		}
	}

	attendances, err := storage.ScanAs(o.store, record.KindAttendance, func(a *event.Attendance) bool {
		return a.UserID == u.ID
	})
	if err != nil {
		return err
	}
	for _, a := range attendances {
		if err := o.cascadeDelete(record.KindAttendance, a.ID); err != nil {
			return err
		}
	}

	surveys, err := storage.ScanAs(o.store, record.KindSurvey, func(s *survey.Survey) bool {
		return s.OwnerID == u.ID
	})
	if err != nil {
		return err
	}
	for _, s := range surveys {
		if err := o.cascadeDelete(record.KindSurvey, s.ID); err != nil {
			return err
		}
	}

	// Questions not already gone with a survey above
	questions, err := storage.ScanAs(o.store, record.KindQuestion, func(q *survey.Question) bool {
		return q.OwnerID == u.ID
	})
	if err != nil {
		return err
	}
	for _, q := range questions {
		if err := o.cascadeDelete(record.KindQuestion, q.ID); err != nil {
			return err
		}
	}

	if err := o.store.Delete(u.ID, record.KindUser); err != nil {
		return fmt.Errorf("unregister user %d: %w", u.ID, err)
	}

	o.log.Info("User unregistered", "id", u.ID, "username", u.Username, "events_deleted", deleteEvents)
	return nil
}
