package services

import (
	"fmt"

	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/domain/survey"
	"github.com/gravadigital/poorganiser-api/internal/domain/user"
)

// CreateResponse records a user's answer to a question. Every supplied
// choice must be in the question's allowed set; a foreign choice fails
// with ErrInvalidChoiceID and nothing is written. Text may be empty.
func (o *Organiser) CreateResponse(responder, questionRef record.Ref, text string, choiceIDs []int) (*survey.Response, error) {
	u, err := o.resolveUser(responder)
	if err != nil {
		return nil, err
	}

	q, err := o.resolveQuestion(questionRef)
	if err != nil {
		return nil, err
	}

	for _, id := range choiceIDs {
		if !q.AllowsChoice(id) {
			return nil, ErrInvalidChoiceID
		}
	}

	rsp := survey.NewResponse(u.ID, q.ID, text, choiceIDs)
	if _, err := o.store.Insert(rsp); err != nil {
		return nil, fmt.Errorf("create response to question %d: %w", q.ID, err)
	}

	q.ResponseIDs.Add(rsp.ID)
	if err := o.store.Update(q); err != nil {
		return nil, fmt.Errorf("link response %d to question %d: %w", rsp.ID, q.ID, err)
	}

	u.ResponseIDs.Add(rsp.ID)
	if err := o.store.Update(u); err != nil {
		return nil, fmt.Errorf("link response %d to user %d: %w", rsp.ID, u.ID, err)
	}

	o.log.Debug("Response created", "id", rsp.ID, "responder", u.ID, "question", q.ID)
	return rsp, nil
}

// DeleteResponse removes a response, pruning the responder's and
// question's response lists.
func (o *Organiser) DeleteResponse(r record.Ref) error {
	rsp, err := o.resolveResponse(r)
	if err != nil {
		return err
	}
	return o.cascadeDelete(record.KindResponse, rsp.ID)
}

// GetResponder returns the user who gave a response
func (o *Organiser) GetResponder(r record.Ref) (*user.User, error) {
	rsp, err := o.resolveResponse(r)
	if err != nil {
		return nil, err
	}
	return o.resolveUser(byID(rsp.ResponderID))
}

// GetResponseChoices returns the choices a response picked, in list order
func (o *Organiser) GetResponseChoices(r record.Ref) ([]*survey.Choice, error) {
	rsp, err := o.resolveResponse(r)
	if err != nil {
		return nil, err
	}

	choices := make([]*survey.Choice, 0, len(rsp.ChoiceIDs))
	for _, id := range rsp.ChoiceIDs {
		cho, err := o.resolveChoice(byID(id))
		if err != nil {
			return nil, err
		}
		choices = append(choices, cho)
	}
	return choices, nil
}

// GetResponses returns the responses to a *survey.Question or the
// responses given by a *user.User, in list order. Other argument types
// fail with ErrUnsupportedType.
func (o *Organiser) GetResponses(obj any) ([]*survey.Response, error) {
	var ids record.IDList

	switch v := obj.(type) {
	case *survey.Question:
		q, err := o.resolveQuestion(ref(v))
		if err != nil {
			return nil, err
		}
		ids = q.ResponseIDs
	case *user.User:
		u, err := o.resolveUser(ref(v))
		if err != nil {
			return nil, err
		}
		ids = u.ResponseIDs
	default:
		return nil, ErrUnsupportedType
	}

	responses := make([]*survey.Response, 0, len(ids))
	for _, id := range ids {
		rsp, err := o.resolveResponse(byID(id))
		if err != nil {
			return nil, err
		}
		responses = append(responses, rsp)
	}
	return responses, nil
}
