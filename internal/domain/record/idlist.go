package record

import "slices"

// IDList is an ordered, duplicate-free list of record identities. Every
// linked id-list field on an entity uses this type so the append/remove
// semantics are identical across the whole graph.
type IDList []int

// Add appends an id if it is not already present
func (l *IDList) Add(id int) {
	if slices.Contains(*l, id) {
		return
	}
	*l = append(*l, id)
}

// Remove deletes an id if present, preserving the order of the rest
func (l *IDList) Remove(id int) {
	for i, existing := range *l {
		if existing == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return
		}
	}
}

// Contains reports whether the id is in the list
func (l IDList) Contains(id int) bool {
	return slices.Contains(l, id)
}

// Clone returns an independent copy of the list
func (l IDList) Clone() IDList {
	if l == nil {
		return nil
	}
	return slices.Clone(l)
}
