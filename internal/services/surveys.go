package services

import (
	"fmt"

	"github.com/gravadigital/poorganiser-api/internal/domain/event"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/domain/survey"
	"github.com/gravadigital/poorganiser-api/internal/domain/user"
)

// CreateSurvey creates a survey owned by the given user, optionally
// attached to an event (pass a zero Ref for none) and optionally adopting
// existing questions. The owner, the event and every question are resolved
// before anything is linked, so a bad reference leaves the graph untouched.
func (o *Organiser) CreateSurvey(name string, owner record.Ref, questionRefs []record.Ref, eventRef record.Ref) (*survey.Survey, error) {
	if err := o.surveyValidator.ValidateSurveyName(name); err != nil {
		return nil, err
	}

	u, err := o.resolveUser(owner)
	if err != nil {
		return nil, err
	}

	var evt *event.Event
	if !eventRef.IsZero() {
		if evt, err = o.resolveEvent(eventRef); err != nil {
			return nil, err
		}
	}

	questions := make([]*survey.Question, 0, len(questionRefs))
	for _, qr := range questionRefs {
		q, err := o.resolveQuestion(qr)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	eventID := 0
	if evt != nil {
		eventID = evt.ID
	}
	svy := survey.New(name, u.ID, eventID)
	for _, q := range questions {
		svy.QuestionIDs.Add(q.ID)
	}
	if _, err := o.store.Insert(svy); err != nil {
		return nil, fmt.Errorf("create survey %q: %w", name, err)
	}

	for _, q := range questions {
		q.SurveyID = svy.ID
		if err := o.store.Update(q); err != nil {
			return nil, fmt.Errorf("link question %d to survey %d: %w", q.ID, svy.ID, err)
		}
	}

	u.SurveyIDs.Add(svy.ID)
	if err := o.store.Update(u); err != nil {
		return nil, fmt.Errorf("link survey %d to user %d: %w", svy.ID, u.ID, err)
	}

	if evt != nil {
		evt.SurveyIDs.Add(svy.ID)
		if err := o.store.Update(evt); err != nil {
			return nil, fmt.Errorf("link survey %d to event %d: %w", svy.ID, evt.ID, err)
		}
	}

	o.log.Info("Survey created", "id", svy.ID, "name", name, "owner", u.ID, "event", eventID)
	return svy, nil
}

// DeleteSurvey removes a survey together with its questions (and their
// choices and responses), pruning the owner's and event's survey lists.
func (o *Organiser) DeleteSurvey(r record.Ref) error {
	svy, err := o.resolveSurvey(r)
	if err != nil {
		return err
	}
	return o.cascadeDelete(record.KindSurvey, svy.ID)
}

// GetSurveys returns the surveys owned by a *user.User or attached to an
// *event.Event, in list order. Other argument types fail with
// ErrUnsupportedType.
func (o *Organiser) GetSurveys(obj any) ([]*survey.Survey, error) {
	var ids record.IDList

	switch v := obj.(type) {
	case *user.User:
		u, err := o.resolveUser(ref(v))
		if err != nil {
			return nil, err
		}
		ids = u.SurveyIDs
	case *event.Event:
		evt, err := o.resolveEvent(ref(v))
		if err != nil {
			return nil, err
		}
		ids = evt.SurveyIDs
	default:
		return nil, ErrUnsupportedType
	}

	surveys := make([]*survey.Survey, 0, len(ids))
	for _, id := range ids {
		svy, err := o.resolveSurvey(byID(id))
		if err != nil {
			return nil, err
		}
		surveys = append(surveys, svy)
	}
	return surveys, nil
}
