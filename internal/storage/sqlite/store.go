// Package sqlite provides a SQLite-backed persistence store using the pure
// Go modernc.org/sqlite driver. Each record kind gets its own table holding
// JSON payloads; AUTOINCREMENT keeps ids monotonic and never reused.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/gravadigital/poorganiser-api/internal/config"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/logger"
	"github.com/gravadigital/poorganiser-api/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store persists records to a SQLite database file
type Store struct {
	db   *sql.DB
	log  *log.Logger
	path string
}

// NewStore opens (and if needed initializes) a SQLite-backed store
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "porg.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	s := &Store{
		db:   db,
		log:  logger.Store("sqlite"),
		path: path,
	}
	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, err
	}

	s.log.Debug("SQLite store opened", "path", path)
	return s, nil
}

// Open creates a SQLite store from configuration, for the factory
func Open(cfg *config.Config) (storage.Store, error) {
	return NewStore(cfg.Storage.SQLitePath)
}

func (s *Store) createTables() error {
	for _, kind := range record.Kinds() {
		ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			data TEXT NOT NULL
		)`, tableName(kind))
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("create table %s: %w", tableName(kind), err)
		}
	}
	return nil
}

func (s *Store) Insert(rec record.Record) (int, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", rec.Kind(), err)
	}

	res, err := s.db.Exec(fmt.Sprintf(`INSERT INTO %s (data) VALUES (?)`, tableName(rec.Kind())), payload)
	if err != nil {
		s.log.Error("Failed to insert record", "kind", rec.Kind(), "error", err)
		return 0, fmt.Errorf("insert %s: %w", rec.Kind(), err)
	}

	id64, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", rec.Kind(), err)
	}
	id := int(id64)
	rec.SetID(id)

	// Rewrite the payload so the stored document carries its assigned id.
	if err := s.Update(rec); err != nil {
		return 0, err
	}

	s.log.Debug("Record inserted", "kind", rec.Kind(), "id", id)
	return id, nil
}

func (s *Store) Get(id int, kind record.Kind) (record.Record, error) {
	var payload []byte
	row := s.db.QueryRow(fmt.Sprintf(`SELECT data FROM %s WHERE id = ?`, tableName(kind)), id)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		s.log.Error("Failed to get record", "kind", kind, "id", id, "error", err)
		return nil, fmt.Errorf("get %s %d: %w", kind, id, err)
	}
	return decodeRecord(kind, id, payload)
}

func (s *Store) Update(rec record.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", rec.Kind(), err)
	}

	res, err := s.db.Exec(fmt.Sprintf(`UPDATE %s SET data = ? WHERE id = ?`, tableName(rec.Kind())), payload, rec.GetID())
	if err != nil {
		s.log.Error("Failed to update record", "kind", rec.Kind(), "id", rec.GetID(), "error", err)
		return fmt.Errorf("update %s %d: %w", rec.Kind(), rec.GetID(), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s %d: %w", rec.Kind(), rec.GetID(), err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(id int, kind record.Kind) error {
	res, err := s.db.Exec(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, tableName(kind)), id)
	if err != nil {
		s.log.Error("Failed to delete record", "kind", kind, "id", id, "error", err)
		return fmt.Errorf("delete %s %d: %w", kind, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", kind, id, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	s.log.Debug("Record deleted", "kind", kind, "id", id)
	return nil
}

func (s *Store) Scan(kind record.Kind, pred func(record.Record) bool) ([]record.Record, error) {
	rows, err := s.db.Query(fmt.Sprintf(`SELECT id, data FROM %s ORDER BY id ASC`, tableName(kind)))
	if err != nil {
		s.log.Error("Failed to scan records", "kind", kind, "error", err)
		return nil, fmt.Errorf("scan %s: %w", kind, err)
	}
	defer func() { _ = rows.Close() }()

	var out []record.Record
	for rows.Next() {
		var (
			id      int
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind, err)
		}
		rec, err := decodeRecord(kind, id, payload)
		if err != nil {
			return nil, err
		}
		if pred == nil || pred(rec) {
			out = append(out, rec)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", kind, err)
	}
	return out, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	s.log.Debug("Closing SQLite store", "path", s.path)
	return s.db.Close()
}
