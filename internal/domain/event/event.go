// Package event defines the Event and Attendance entities.
package event

import (
	"time"

	"github.com/gravadigital/poorganiser-api/internal/domain/record"
)

// Event is an organised gathering. OwnerID is 0 for an ownerless event
// (the owner unregistered without deleting their events). Time is nil for
// events with no scheduled date; such events are always "current".
type Event struct {
	ID            int           `json:"id"`
	OwnerID       int           `json:"owner_id"`
	Name          string        `json:"name"`
	Location      string        `json:"location,omitempty"`
	Time          *time.Time    `json:"time,omitempty"`
	AttendanceIDs record.IDList `json:"attendance_ids"`
	SurveyIDs     record.IDList `json:"survey_ids"`
}

// New creates an unpersisted event owned by the given user
func New(name string, ownerID int, location string, at *time.Time) *Event {
	return &Event{
		OwnerID:       ownerID,
		Name:          name,
		Location:      location,
		Time:          at,
		AttendanceIDs: record.IDList{},
		SurveyIDs:     record.IDList{},
	}
}

func (e *Event) GetID() int        { return e.ID }
func (e *Event) SetID(id int)      { e.ID = id }
func (e *Event) Kind() record.Kind { return record.KindEvent }

// Clone returns an independent copy of the event
func (e *Event) Clone() record.Record {
	dup := *e
	if e.Time != nil {
		t := *e.Time
		dup.Time = &t
	}
	dup.AttendanceIDs = e.AttendanceIDs.Clone()
	dup.SurveyIDs = e.SurveyIDs.Clone()
	return &dup
}

// HasOwner reports whether the event still has an owner
func (e *Event) HasOwner() bool {
	return e.OwnerID != 0
}

// IsCurrent reports whether the event is undated or on/after the given day.
// The comparison is by calendar day, not instant.
func (e *Event) IsCurrent(today time.Time) bool {
	if e.Time == nil {
		return true
	}
	y, m, d := today.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return !e.Time.Before(dayStart)
}
