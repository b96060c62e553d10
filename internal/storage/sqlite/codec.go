package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/gravadigital/poorganiser-api/internal/domain/event"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/domain/survey"
	"github.com/gravadigital/poorganiser-api/internal/domain/user"
)

// tableName maps a record kind to its table. Names match the PostgreSQL
// schema so the backends stay interchangeable.
func tableName(kind record.Kind) string {
	switch kind {
	case record.KindUser:
		return "users"
	case record.KindEvent:
		return "events"
	case record.KindAttendance:
		return "attendance"
	case record.KindSurvey:
		return "surveys"
	case record.KindQuestion:
		return "questions"
	case record.KindChoice:
		return "choices"
	case record.KindResponse:
		return "responses"
	default:
		return string(kind)
	}
}

// decodeRecord unmarshals a stored payload into its concrete type. The id
// column is authoritative; the payload id is overwritten with it.
func decodeRecord(kind record.Kind, id int, payload []byte) (record.Record, error) {
	var rec record.Record
	switch kind {
	case record.KindUser:
		rec = &user.User{}
	case record.KindEvent:
		rec = &event.Event{}
	case record.KindAttendance:
		rec = &event.Attendance{}
	case record.KindSurvey:
		rec = &survey.Survey{}
	case record.KindQuestion:
		rec = &survey.Question{}
	case record.KindChoice:
		rec = &survey.Choice{}
	case record.KindResponse:
		rec = &survey.Response{}
	default:
		return nil, fmt.Errorf("decode: unknown record kind %q", kind)
	}

	if err := json.Unmarshal(payload, rec); err != nil {
		return nil, fmt.Errorf("decode %s %d: %w", kind, id, err)
	}
	rec.SetID(id)
	return rec, nil
}
