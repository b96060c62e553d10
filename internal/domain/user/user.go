// Package user defines the User entity.
package user

import "github.com/gravadigital/poorganiser-api/internal/domain/record"

// User is a registered participant. Usernames are unique and case-sensitive.
// The id-list fields track every entity the user organises, attends or owns;
// the Organiser service keeps them consistent with the rest of the graph.
type User struct {
	ID              int            `json:"id"`
	Username        string         `json:"username"`
	EventsOrganised record.IDList  `json:"events_organised_ids"`
	EventsAttending record.IDList  `json:"events_attending_ids"`
	SurveyIDs       record.IDList  `json:"survey_ids"`
	QuestionIDs     record.IDList  `json:"question_ids"`
	ResponseIDs     record.IDList  `json:"response_ids"`
}

// New creates an unpersisted user with empty id-lists
func New(username string) *User {
	return &User{
		Username:        username,
		EventsOrganised: record.IDList{},
		EventsAttending: record.IDList{},
		SurveyIDs:       record.IDList{},
		QuestionIDs:     record.IDList{},
		ResponseIDs:     record.IDList{},
	}
}

func (u *User) GetID() int        { return u.ID }
func (u *User) SetID(id int)      { u.ID = id }
func (u *User) Kind() record.Kind { return record.KindUser }

// Clone returns an independent copy of the user
func (u *User) Clone() record.Record {
	dup := *u
	dup.EventsOrganised = u.EventsOrganised.Clone()
	dup.EventsAttending = u.EventsAttending.Clone()
	dup.SurveyIDs = u.SurveyIDs.Clone()
	dup.QuestionIDs = u.QuestionIDs.Clone()
	dup.ResponseIDs = u.ResponseIDs.Clone()
	return &dup
}

// IsOrganising reports whether the user organises the given event
func (u *User) IsOrganising(eventID int) bool {
	return u.EventsOrganised.Contains(eventID)
}

// IsAttending reports whether the user attends the given event
func (u *User) IsAttending(eventID int) bool {
	return u.EventsAttending.Contains(eventID)
}
