package survey

import (
	"slices"

	"github.com/gravadigital/poorganiser-api/internal/domain/record"
)

// Recognized question types
const (
	TypeFree           = "free"
	TypeSingleChoice   = "single_choice"
	TypeMultipleChoice = "multiple_choice"
)

// ValidQuestionType reports whether qtype is one of the recognized kinds
func ValidQuestionType(qtype string) bool {
	return slices.Contains([]string{TypeFree, TypeSingleChoice, TypeMultipleChoice}, qtype)
}

// Question belongs to an owner and optionally to a survey (SurveyID 0 means
// unattached). AllowedChoiceIDs lists the choices a response may pick from.
type Question struct {
	ID               int           `json:"id"`
	OwnerID          int           `json:"owner_id"`
	Text             string        `json:"question"`
	Type             string        `json:"question_type"`
	SurveyID         int           `json:"survey_id,omitempty"`
	AllowedChoiceIDs record.IDList `json:"allowed_choice_ids"`
	ResponseIDs      record.IDList `json:"response_ids"`
}

// NewQuestion creates an unpersisted question
func NewQuestion(ownerID int, text, qtype string) *Question {
	return &Question{
		OwnerID:          ownerID,
		Text:             text,
		Type:             qtype,
		AllowedChoiceIDs: record.IDList{},
		ResponseIDs:      record.IDList{},
	}
}

func (q *Question) GetID() int        { return q.ID }
func (q *Question) SetID(id int)      { q.ID = id }
func (q *Question) Kind() record.Kind { return record.KindQuestion }

// Clone returns an independent copy of the question
func (q *Question) Clone() record.Record {
	dup := *q
	dup.AllowedChoiceIDs = q.AllowedChoiceIDs.Clone()
	dup.ResponseIDs = q.ResponseIDs.Clone()
	return &dup
}

// AllowsChoice reports whether the choice id is in the allowed set
func (q *Question) AllowsChoice(choiceID int) bool {
	return q.AllowedChoiceIDs.Contains(choiceID)
}

// HasSurvey reports whether the question is attached to a survey
func (q *Question) HasSurvey() bool {
	return q.SurveyID != 0
}
