// Package storage defines the persistence contract the Organiser consumes.
// Backends map (id, kind) pairs to records; identities are positive integers
// assigned on insert, monotonically increasing per kind and never reused.
package storage

import (
	"errors"

	"github.com/gravadigital/poorganiser-api/internal/domain/record"
)

// ErrNotFound is returned by Get, Update and Delete when no record of the
// requested kind exists with the given id.
var ErrNotFound = errors.New("record not found")

// Store is the persistence contract. Records handed in and out are always
// independent copies; mutating a returned record does not change stored
// state until Update is called with it.
type Store interface {
	// Insert persists a new record and returns its assigned id. The id is
	// also set on the passed record.
	Insert(rec record.Record) (int, error)

	// Get returns the record with the given id and kind, or ErrNotFound.
	Get(id int, kind record.Kind) (record.Record, error)

	// Update overwrites the stored record with the same id and kind, or
	// returns ErrNotFound.
	Update(rec record.Record) error

	// Delete removes the record with the given id and kind, or returns
	// ErrNotFound. The id is never reused.
	Delete(id int, kind record.Kind) error

	// Scan returns all records of a kind matching the predicate, ordered
	// by ascending id. A nil predicate matches everything.
	Scan(kind record.Kind, pred func(record.Record) bool) ([]record.Record, error)

	// Close releases backend resources.
	Close() error
}

// ScanAs scans a kind and returns the matches as their concrete type. The
// predicate receives the typed record; a nil predicate matches everything.
func ScanAs[T record.Record](s Store, kind record.Kind, pred func(T) bool) ([]T, error) {
	recs, err := s.Scan(kind, func(rec record.Record) bool {
		typed, ok := rec.(T)
		if !ok {
			return false
		}
		return pred == nil || pred(typed)
	})
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.(T))
	}
	return out, nil
}

// GetAs fetches a record and asserts its concrete type
func GetAs[T record.Record](s Store, id int, kind record.Kind) (T, error) {
	var zero T
	rec, err := s.Get(id, kind)
	if err != nil {
		return zero, err
	}
	typed, ok := rec.(T)
	if !ok {
		return zero, ErrNotFound
	}
	return typed, nil
}
