package services

import (
	"errors"
	"fmt"

	"github.com/gravadigital/poorganiser-api/internal/domain/event"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/domain/survey"
	"github.com/gravadigital/poorganiser-api/internal/domain/user"
	"github.com/gravadigital/poorganiser-api/internal/storage"
)

// Terse aliases for building references at call sites inside the package.
func ref(r record.Record) record.Ref { return record.ByRecord(r) }
func byID(id int) record.Ref         { return record.ByID(id) }

// resolve confirms a reference points at an existing record of the given
// kind and returns the freshly loaded record. A reference only supplies a
// candidate id; the stored record is authoritative.
func resolve[T record.Record](o *Organiser, r record.Ref, kind record.Kind, notFound error) (T, error) {
	var zero T

	id := r.ID()
	if id <= 0 {
		return zero, notFound
	}

	rec, err := storage.GetAs[T](o.store, id, kind)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return zero, notFound
		}
		return zero, fmt.Errorf("resolve %s %d: %w", kind, id, err)
	}
	return rec, nil
}

// resolveUser resolves a user reference. Users can additionally be
// referenced by username.
func (o *Organiser) resolveUser(r record.Ref) (*user.User, error) {
	if name := r.Name(); name != "" {
		u, err := o.lookupUsername(name)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, ErrUserNotFound
		}
		return u, nil
	}
	return resolve[*user.User](o, r, record.KindUser, ErrUserNotFound)
}

// lookupUsername returns the user with the given username, or nil
func (o *Organiser) lookupUsername(username string) (*user.User, error) {
	matches, err := storage.ScanAs(o.store, record.KindUser, func(u *user.User) bool {
		return u.Username == username
	})
	if err != nil {
		return nil, fmt.Errorf("lookup username %q: %w", username, err)
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (o *Organiser) resolveEvent(r record.Ref) (*event.Event, error) {
	return resolve[*event.Event](o, r, record.KindEvent, ErrEventNotFound)
}

func (o *Organiser) resolveAttendance(r record.Ref) (*event.Attendance, error) {
	return resolve[*event.Attendance](o, r, record.KindAttendance, ErrAttendanceNotFound)
}

func (o *Organiser) resolveSurvey(r record.Ref) (*survey.Survey, error) {
	return resolve[*survey.Survey](o, r, record.KindSurvey, ErrSurveyNotFound)
}

func (o *Organiser) resolveQuestion(r record.Ref) (*survey.Question, error) {
	return resolve[*survey.Question](o, r, record.KindQuestion, ErrQuestionNotFound)
}

func (o *Organiser) resolveChoice(r record.Ref) (*survey.Choice, error) {
	return resolve[*survey.Choice](o, r, record.KindChoice, ErrChoiceNotFound)
}

func (o *Organiser) resolveResponse(r record.Ref) (*survey.Response, error) {
	return resolve[*survey.Response](o, r, record.KindResponse, ErrResponseNotFound)
}
