package record

// Ref is a caller-supplied reference to an entity: a raw id, a live record
// instance, or (for users) a username. Resolution always goes back to the
// store to confirm the entity still exists; the fields of a detached
// instance are never trusted beyond its id.
type Ref struct {
	id   int
	rec  Record
	name string
}

// ByID references an entity by its identity
func ByID(id int) Ref {
	return Ref{id: id}
}

// ByRecord references an entity through a live instance
func ByRecord(rec Record) Ref {
	return Ref{rec: rec}
}

// ByName references a user by username
func ByName(name string) Ref {
	return Ref{name: name}
}

// ID returns the candidate identity carried by the reference. A by-name
// reference carries no id and returns 0.
func (r Ref) ID() int {
	if r.rec != nil {
		return r.rec.GetID()
	}
	return r.id
}

// Name returns the username for a by-name reference, or ""
func (r Ref) Name() string {
	return r.name
}

// IsZero reports whether the reference carries nothing at all
func (r Ref) IsZero() bool {
	return r.rec == nil && r.id == 0 && r.name == ""
}
