package postgres

import (
	"fmt"
	"slices"

	"github.com/lib/pq"

	"github.com/gravadigital/poorganiser-api/internal/domain/event"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/domain/survey"
	"github.com/gravadigital/poorganiser-api/internal/domain/user"
	"github.com/gravadigital/poorganiser-api/internal/storage/migrations"
)

func idsToArray(ids record.IDList) pq.Int64Array {
	out := make(pq.Int64Array, 0, len(ids))
	for _, id := range ids {
		out = append(out, int64(id))
	}
	return out
}

func arrayToIDs(arr pq.Int64Array) record.IDList {
	out := make(record.IDList, 0, len(arr))
	for _, id := range arr {
		out = append(out, int(id))
	}
	return out
}

// newRowModel returns an empty row model for a record kind, for GORM
// queries that need a destination type.
func newRowModel(kind record.Kind) (any, error) {
	switch kind {
	case record.KindUser:
		return &migrations.UserRow{}, nil
	case record.KindEvent:
		return &migrations.EventRow{}, nil
	case record.KindAttendance:
		return &migrations.AttendanceRow{}, nil
	case record.KindSurvey:
		return &migrations.SurveyRow{}, nil
	case record.KindQuestion:
		return &migrations.QuestionRow{}, nil
	case record.KindChoice:
		return &migrations.ChoiceRow{}, nil
	case record.KindResponse:
		return &migrations.ResponseRow{}, nil
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
}

// toRow converts a domain record into its row model
func toRow(rec record.Record) (any, error) {
	switch r := rec.(type) {
	case *user.User:
		return &migrations.UserRow{
			ID:                 int64(r.ID),
			Username:           r.Username,
			EventsOrganisedIDs: idsToArray(r.EventsOrganised),
			EventsAttendingIDs: idsToArray(r.EventsAttending),
			SurveyIDs:          idsToArray(r.SurveyIDs),
			QuestionIDs:        idsToArray(r.QuestionIDs),
			ResponseIDs:        idsToArray(r.ResponseIDs),
		}, nil
	case *event.Event:
		return &migrations.EventRow{
			ID:            int64(r.ID),
			OwnerID:       int64(r.OwnerID),
			Name:          r.Name,
			Location:      r.Location,
			Time:          r.Time,
			AttendanceIDs: idsToArray(r.AttendanceIDs),
			SurveyIDs:     idsToArray(r.SurveyIDs),
		}, nil
	case *event.Attendance:
		return &migrations.AttendanceRow{
			ID:          int64(r.ID),
			UserID:      int64(r.UserID),
			EventID:     int64(r.EventID),
			GoingStatus: r.GoingStatus,
			Roles:       pq.StringArray(slices.Clone(r.Roles)),
		}, nil
	case *survey.Survey:
		return &migrations.SurveyRow{
			ID:          int64(r.ID),
			Name:        r.Name,
			OwnerID:     int64(r.OwnerID),
			EventID:     int64(r.EventID),
			QuestionIDs: idsToArray(r.QuestionIDs),
		}, nil
	case *survey.Question:
		return &migrations.QuestionRow{
			ID:               int64(r.ID),
			OwnerID:          int64(r.OwnerID),
			Question:         r.Text,
			QuestionType:     r.Type,
			SurveyID:         int64(r.SurveyID),
			AllowedChoiceIDs: idsToArray(r.AllowedChoiceIDs),
			ResponseIDs:      idsToArray(r.ResponseIDs),
		}, nil
	case *survey.Choice:
		return &migrations.ChoiceRow{
			ID:         int64(r.ID),
			QuestionID: int64(r.QuestionID),
			Choice:     r.Text,
		}, nil
	case *survey.Response:
		return &migrations.ResponseRow{
			ID:           int64(r.ID),
			ResponderID:  int64(r.ResponderID),
			QuestionID:   int64(r.QuestionID),
			ResponseText: r.Text,
			ChoiceIDs:    idsToArray(r.ChoiceIDs),
		}, nil
	default:
		return nil, fmt.Errorf("unknown record type %T", rec)
	}
}

// fromRow converts a row model back into its domain record
func fromRow(row any) (record.Record, error) {
	switch r := row.(type) {
	case *migrations.UserRow:
		return &user.User{
			ID:              int(r.ID),
			Username:        r.Username,
			EventsOrganised: arrayToIDs(r.EventsOrganisedIDs),
			EventsAttending: arrayToIDs(r.EventsAttendingIDs),
			SurveyIDs:       arrayToIDs(r.SurveyIDs),
			QuestionIDs:     arrayToIDs(r.QuestionIDs),
			ResponseIDs:     arrayToIDs(r.ResponseIDs),
		}, nil
	case *migrations.EventRow:
		return &event.Event{
			ID:            int(r.ID),
			OwnerID:       int(r.OwnerID),
			Name:          r.Name,
			Location:      r.Location,
			Time:          r.Time,
			AttendanceIDs: arrayToIDs(r.AttendanceIDs),
			SurveyIDs:     arrayToIDs(r.SurveyIDs),
		}, nil
	case *migrations.AttendanceRow:
		return &event.Attendance{
			ID:          int(r.ID),
			UserID:      int(r.UserID),
			EventID:     int(r.EventID),
			GoingStatus: r.GoingStatus,
			Roles:       slices.Clone([]string(r.Roles)),
		}, nil
	case *migrations.SurveyRow:
		return &survey.Survey{
			ID:          int(r.ID),
			Name:        r.Name,
			OwnerID:     int(r.OwnerID),
			EventID:     int(r.EventID),
			QuestionIDs: arrayToIDs(r.QuestionIDs),
		}, nil
	case *migrations.QuestionRow:
		return &survey.Question{
			ID:               int(r.ID),
			OwnerID:          int(r.OwnerID),
			Text:             r.Question,
			Type:             r.QuestionType,
			SurveyID:         int(r.SurveyID),
			AllowedChoiceIDs: arrayToIDs(r.AllowedChoiceIDs),
			ResponseIDs:      arrayToIDs(r.ResponseIDs),
		}, nil
	case *migrations.ChoiceRow:
		return &survey.Choice{
			ID:         int(r.ID),
			QuestionID: int(r.QuestionID),
			Text:       r.Choice,
		}, nil
	case *migrations.ResponseRow:
		return &survey.Response{
			ID:          int(r.ID),
			ResponderID: int(r.ResponderID),
			QuestionID:  int(r.QuestionID),
			Text:        r.ResponseText,
			ChoiceIDs:   arrayToIDs(r.ChoiceIDs),
		}, nil
	default:
		return nil, fmt.Errorf("unknown row type %T", row)
	}
}

// rowID extracts the assigned primary key from a row model after insert
func rowID(row any) (int, error) {
	switch r := row.(type) {
	case *migrations.UserRow:
		return int(r.ID), nil
	case *migrations.EventRow:
		return int(r.ID), nil
	case *migrations.AttendanceRow:
		return int(r.ID), nil
	case *migrations.SurveyRow:
		return int(r.ID), nil
	case *migrations.QuestionRow:
		return int(r.ID), nil
	case *migrations.ChoiceRow:
		return int(r.ID), nil
	case *migrations.ResponseRow:
		return int(r.ID), nil
	default:
		return 0, fmt.Errorf("unknown row type %T", row)
	}
}
