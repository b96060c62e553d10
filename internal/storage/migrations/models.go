package migrations

import (
	"time"

	"github.com/lib/pq"
)

// Row models for the PostgreSQL backend. Id-list fields are stored as
// bigint arrays, roles as a text array. Every table uses a BIGSERIAL
// primary key so identities are monotonic and never reused.

// UserRow represents a registered user
type UserRow struct {
	ID                 int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Username           string        `gorm:"uniqueIndex;not null" json:"username"`
	EventsOrganisedIDs pq.Int64Array `gorm:"type:bigint[]" json:"events_organised_ids"`
	EventsAttendingIDs pq.Int64Array `gorm:"type:bigint[]" json:"events_attending_ids"`
	SurveyIDs          pq.Int64Array `gorm:"type:bigint[]" json:"survey_ids"`
	QuestionIDs        pq.Int64Array `gorm:"type:bigint[]" json:"question_ids"`
	ResponseIDs        pq.Int64Array `gorm:"type:bigint[]" json:"response_ids"`
}

func (UserRow) TableName() string {
	return "users"
}

// EventRow represents an organised event. OwnerID 0 marks an ownerless
// event; Time is nullable for undated events.
type EventRow struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID       int64         `json:"owner_id"`
	Name          string        `gorm:"not null" json:"name"`
	Location      string        `json:"location"`
	Time          *time.Time    `json:"time"`
	AttendanceIDs pq.Int64Array `gorm:"type:bigint[]" json:"attendance_ids"`
	SurveyIDs     pq.Int64Array `gorm:"type:bigint[]" json:"survey_ids"`
}

func (EventRow) TableName() string {
	return "events"
}

// AttendanceRow links one user to one event
type AttendanceRow struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64          `gorm:"not null;index" json:"user_id"`
	EventID     int64          `gorm:"not null;index" json:"event_id"`
	GoingStatus string         `gorm:"not null" json:"going_status"`
	Roles       pq.StringArray `gorm:"type:text[]" json:"roles"`
}

func (AttendanceRow) TableName() string {
	return "attendance"
}

// SurveyRow represents a survey, optionally attached to an event
type SurveyRow struct {
	ID          int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string        `gorm:"not null" json:"name"`
	OwnerID     int64         `gorm:"not null" json:"owner_id"`
	EventID     int64         `json:"event_id"`
	QuestionIDs pq.Int64Array `gorm:"type:bigint[]" json:"question_ids"`
}

func (SurveyRow) TableName() string {
	return "surveys"
}

// QuestionRow represents a question, optionally attached to a survey
type QuestionRow struct {
	ID               int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID          int64         `gorm:"not null" json:"owner_id"`
	Question         string        `gorm:"not null" json:"question"`
	QuestionType     string        `gorm:"not null" json:"question_type"`
	SurveyID         int64         `json:"survey_id"`
	AllowedChoiceIDs pq.Int64Array `gorm:"type:bigint[]" json:"allowed_choice_ids"`
	ResponseIDs      pq.Int64Array `gorm:"type:bigint[]" json:"response_ids"`
}

func (QuestionRow) TableName() string {
	return "questions"
}

// ChoiceRow represents one selectable answer of a question
type ChoiceRow struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID int64  `gorm:"not null;index" json:"question_id"`
	Choice     string `gorm:"not null" json:"choice"`
}

func (ChoiceRow) TableName() string {
	return "choices"
}

// ResponseRow represents one user's answer to a question
type ResponseRow struct {
	ID           int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	ResponderID  int64         `gorm:"not null;index" json:"responder_id"`
	QuestionID   int64         `gorm:"not null;index" json:"question_id"`
	ResponseText string        `json:"response_text"`
	ChoiceIDs    pq.Int64Array `gorm:"type:bigint[]" json:"choice_ids"`
}

func (ResponseRow) TableName() string {
	return "responses"
}

// AllModels returns every row model for AutoMigrate
func AllModels() []any {
	return []any{
		&UserRow{},
		&EventRow{},
		&AttendanceRow{},
		&SurveyRow{},
		&QuestionRow{},
		&ChoiceRow{},
		&ResponseRow{},
	}
}
