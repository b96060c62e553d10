// Package memory provides an in-memory implementation of the persistence
// store, used by tests and ephemeral runs.
package memory

import (
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/gravadigital/poorganiser-api/internal/config"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/logger"
	"github.com/gravadigital/poorganiser-api/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps records in per-kind maps. Ids count up per kind and are never
// reused, matching the relational backends.
type Store struct {
	mu      sync.Mutex
	log     *log.Logger
	records map[record.Kind]map[int]record.Record
	nextID  map[record.Kind]int
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	records := make(map[record.Kind]map[int]record.Record)
	nextID := make(map[record.Kind]int)
	for _, kind := range record.Kinds() {
		records[kind] = make(map[int]record.Record)
		nextID[kind] = 1
	}
	return &Store{
		log:     logger.Store("memory"),
		records: records,
		nextID:  nextID,
	}
}

// Open creates an in-memory store from configuration, for the factory
func Open(_ *config.Config) (storage.Store, error) {
	return NewStore(), nil
}

func (s *Store) Insert(rec record.Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind := rec.Kind()
	id := s.nextID[kind]
	s.nextID[kind]++

	rec.SetID(id)
	s.records[kind][id] = rec.Clone()

	s.log.Debug("Record inserted", "kind", kind, "id", id)
	return id, nil
}

func (s *Store) Get(id int, kind record.Kind) (record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[kind][id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return rec.Clone(), nil
}

func (s *Store) Update(rec record.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind := rec.Kind()
	if _, ok := s.records[kind][rec.GetID()]; !ok {
		return storage.ErrNotFound
	}
	s.records[kind][rec.GetID()] = rec.Clone()

	s.log.Debug("Record updated", "kind", kind, "id", rec.GetID())
	return nil
}

func (s *Store) Delete(id int, kind record.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[kind][id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.records[kind], id)

	s.log.Debug("Record deleted", "kind", kind, "id", id)
	return nil
}

func (s *Store) Scan(kind record.Kind, pred func(record.Record) bool) ([]record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.records[kind]))
	for id := range s.records[kind] {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var out []record.Record
	for _, id := range ids {
		rec := s.records[kind][id]
		if pred == nil || pred(rec) {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

// Close is a no-op for the in-memory backend
func (s *Store) Close() error {
	return nil
}
