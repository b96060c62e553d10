// Package record defines the contracts shared by every persisted entity:
// the Record interface, the Kind enumeration, the ordered id-list used by
// linked fields and the Ref type callers use to reference entities.
package record

// Kind identifies the entity type of a persisted record
type Kind string

const (
	KindUser       Kind = "user"
	KindEvent      Kind = "event"
	KindAttendance Kind = "attendance"
	KindSurvey     Kind = "survey"
	KindQuestion   Kind = "question"
	KindChoice     Kind = "choice"
	KindResponse   Kind = "response"
)

// Kinds lists every known record kind in a stable order
func Kinds() []Kind {
	return []Kind{
		KindUser,
		KindEvent,
		KindAttendance,
		KindSurvey,
		KindQuestion,
		KindChoice,
		KindResponse,
	}
}

// Record is implemented by every persisted entity. Identities are positive
// integers assigned by the store on insert; a zero id means "not persisted".
type Record interface {
	GetID() int
	SetID(id int)
	Kind() Kind
	Clone() Record
}
