package services

import (
	"fmt"

	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/domain/survey"
	"github.com/gravadigital/poorganiser-api/internal/domain/user"
)

// CreateQuestion creates a question owned by the given user, optionally
// attached to a survey (pass a zero Ref for none). The question type is
// checked before anything else; unrecognized types fail with
// ErrInvalidQuestionType.
func (o *Organiser) CreateQuestion(owner record.Ref, text, qtype string, surveyRef record.Ref) (*survey.Question, error) {
	if !survey.ValidQuestionType(qtype) {
		return nil, ErrInvalidQuestionType
	}

	u, err := o.resolveUser(owner)
	if err != nil {
		return nil, err
	}

	var svy *survey.Survey
	if !surveyRef.IsZero() {
		if svy, err = o.resolveSurvey(surveyRef); err != nil {
			return nil, err
		}
	}

	q := survey.NewQuestion(u.ID, text, qtype)
	if svy != nil {
		q.SurveyID = svy.ID
	}
	if _, err := o.store.Insert(q); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	if svy != nil {
		svy.QuestionIDs.Add(q.ID)
		if err := o.store.Update(svy); err != nil {
			return nil, fmt.Errorf("link question %d to survey %d: %w", q.ID, svy.ID, err)
		}
	}

	u.QuestionIDs.Add(q.ID)
	if err := o.store.Update(u); err != nil {
		return nil, fmt.Errorf("link question %d to user %d: %w", q.ID, u.ID, err)
	}

	o.log.Debug("Question created", "id", q.ID, "owner", u.ID, "type", qtype)
	return q, nil
}

// CreateChoice adds a selectable answer to a question
func (o *Organiser) CreateChoice(questionRef record.Ref, text string) (*survey.Choice, error) {
	q, err := o.resolveQuestion(questionRef)
	if err != nil {
		return nil, err
	}

	cho := survey.NewChoice(q.ID, text)
	if _, err := o.store.Insert(cho); err != nil {
		return nil, fmt.Errorf("create choice for question %d: %w", q.ID, err)
	}

	q.AllowedChoiceIDs.Add(cho.ID)
	if err := o.store.Update(q); err != nil {
		return nil, fmt.Errorf("link choice %d to question %d: %w", cho.ID, q.ID, err)
	}

	o.log.Debug("Choice created", "id", cho.ID, "question", q.ID)
	return cho, nil
}

// DeleteChoice removes a choice, pruning the question's allowed set and
// the choice lists of every response that picked it.
func (o *Organiser) DeleteChoice(r record.Ref) error {
	cho, err := o.resolveChoice(r)
	if err != nil {
		return err
	}
	return o.cascadeDelete(record.KindChoice, cho.ID)
}

// DeleteQuestion removes a question together with its choices and
// responses, pruning the owner's and survey's question lists.
func (o *Organiser) DeleteQuestion(r record.Ref) error {
	q, err := o.resolveQuestion(r)
	if err != nil {
		return err
	}
	return o.cascadeDelete(record.KindQuestion, q.ID)
}

// GetAllowedChoices returns a question's choices in allowed-list order
func (o *Organiser) GetAllowedChoices(questionRef record.Ref) ([]*survey.Choice, error) {
	q, err := o.resolveQuestion(questionRef)
	if err != nil {
		return nil, err
	}

	choices := make([]*survey.Choice, 0, len(q.AllowedChoiceIDs))
	for _, id := range q.AllowedChoiceIDs {
		cho, err := o.resolveChoice(byID(id))
		if err != nil {
			return nil, err
		}
		choices = append(choices, cho)
	}
	return choices, nil
}

// GetQuestions returns the questions of a *survey.Survey or the questions
// owned by a *user.User, in list order. Other argument types fail with
// ErrUnsupportedType.
func (o *Organiser) GetQuestions(obj any) ([]*survey.Question, error) {
	var ids record.IDList

	switch v := obj.(type) {
	case *survey.Survey:
		svy, err := o.resolveSurvey(ref(v))
		if err != nil {
			return nil, err
		}
		ids = svy.QuestionIDs
	case *user.User:
		u, err := o.resolveUser(ref(v))
		if err != nil {
			return nil, err
		}
		ids = u.QuestionIDs
	default:
		return nil, ErrUnsupportedType
	}

	questions := make([]*survey.Question, 0, len(ids))
	for _, id := range ids {
		q, err := o.resolveQuestion(byID(id))
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}
