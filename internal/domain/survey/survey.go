// Package survey defines the Survey, Question, Choice and Response entities.
package survey

import "github.com/gravadigital/poorganiser-api/internal/domain/record"

// Survey groups questions, optionally attached to an event. EventID is 0
// for a standalone survey.
type Survey struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	OwnerID     int           `json:"owner_id"`
	EventID     int           `json:"event_id,omitempty"`
	QuestionIDs record.IDList `json:"question_ids"`
}

// New creates an unpersisted survey
func New(name string, ownerID, eventID int) *Survey {
	return &Survey{
		Name:        name,
		OwnerID:     ownerID,
		EventID:     eventID,
		QuestionIDs: record.IDList{},
	}
}

func (s *Survey) GetID() int        { return s.ID }
func (s *Survey) SetID(id int)      { s.ID = id }
func (s *Survey) Kind() record.Kind { return record.KindSurvey }

// Clone returns an independent copy of the survey
func (s *Survey) Clone() record.Record {
	dup := *s
	dup.QuestionIDs = s.QuestionIDs.Clone()
	return &dup
}

// HasEvent reports whether the survey is attached to an event
func (s *Survey) HasEvent() bool {
	return s.EventID != 0
}
