package event

import (
	"slices"

	"github.com/gravadigital/poorganiser-api/internal/domain/record"
)

// Going statuses used by the Organiser. GoingStatus is free-form text;
// these are only the values the service itself writes.
const (
	StatusGoing   = "going"
	StatusInvited = "invited"
)

// RoleOrganiser is the role given to the auto-created attendance of an
// event's owner.
const RoleOrganiser = "organiser"

// Attendance links one user to one event. At most one attendance exists
// per (user, event) pair.
type Attendance struct {
	ID          int      `json:"id"`
	UserID      int      `json:"user_id"`
	EventID     int      `json:"event_id"`
	GoingStatus string   `json:"going_status"`
	Roles       []string `json:"roles"`
}

// NewAttendance creates an unpersisted attendance
func NewAttendance(userID, eventID int, goingStatus string, roles []string) *Attendance {
	if roles == nil {
		roles = []string{}
	}
	return &Attendance{
		UserID:      userID,
		EventID:     eventID,
		GoingStatus: goingStatus,
		Roles:       roles,
	}
}

func (a *Attendance) GetID() int        { return a.ID }
func (a *Attendance) SetID(id int)      { a.ID = id }
func (a *Attendance) Kind() record.Kind { return record.KindAttendance }

// Clone returns an independent copy of the attendance
func (a *Attendance) Clone() record.Record {
	dup := *a
	dup.Roles = slices.Clone(a.Roles)
	return &dup
}

// HasRole reports whether the attendance carries the given role
func (a *Attendance) HasRole(role string) bool {
	return slices.Contains(a.Roles, role)
}

// AddRole appends a role if not already present
func (a *Attendance) AddRole(role string) {
	if a.HasRole(role) {
		return
	}
	a.Roles = append(a.Roles, role)
}
