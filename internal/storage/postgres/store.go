package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/gravadigital/poorganiser-api/internal/config"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/logger"
	"github.com/gravadigital/poorganiser-api/internal/storage"
	"github.com/gravadigital/poorganiser-api/internal/storage/migrations"
)

var _ storage.Store = (*Store)(nil)

// Store persists records to PostgreSQL through GORM
type Store struct {
	db  *gorm.DB
	log *log.Logger
}

// NewStore connects to PostgreSQL, runs migrations and returns a store
func NewStore(cfg *config.Config) (*Store, error) {
	db, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return NewStoreWithDB(db), nil
}

// NewStoreWithDB wraps an existing database connection
func NewStoreWithDB(db *gorm.DB) *Store {
	return &Store{
		db:  db,
		log: logger.Store("postgres"),
	}
}

// Open creates a PostgreSQL store from configuration, for the factory
func Open(cfg *config.Config) (storage.Store, error) {
	return NewStore(cfg)
}

func (s *Store) Insert(rec record.Record) (int, error) {
	row, err := toRow(rec)
	if err != nil {
		return 0, err
	}

	if err := s.db.Create(row).Error; err != nil {
		s.log.Error("Failed to insert record", "kind", rec.Kind(), "error", err)
		return 0, fmt.Errorf("insert %s: %w", rec.Kind(), err)
	}

	id, err := rowID(row)
	if err != nil {
		return 0, err
	}
	rec.SetID(id)

	s.log.Debug("Record inserted", "kind", rec.Kind(), "id", id)
	return id, nil
}

func (s *Store) Get(id int, kind record.Kind) (record.Record, error) {
	row, err := newRowModel(kind)
	if err != nil {
		return nil, err
	}

	if err := s.db.First(row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		s.log.Error("Failed to get record", "kind", kind, "id", id, "error", err)
		return nil, fmt.Errorf("get %s %d: %w", kind, id, err)
	}

	return fromRow(row)
}

func (s *Store) Update(rec record.Record) error {
	row, err := toRow(rec)
	if err != nil {
		return err
	}

	model, err := newRowModel(rec.Kind())
	if err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(model).Where("id = ?", rec.GetID()).Count(&count).Error; err != nil {
		return fmt.Errorf("update %s %d: %w", rec.Kind(), rec.GetID(), err)
	}
	if count == 0 {
		return storage.ErrNotFound
	}

	if err := s.db.Save(row).Error; err != nil {
		s.log.Error("Failed to update record", "kind", rec.Kind(), "id", rec.GetID(), "error", err)
		return fmt.Errorf("update %s %d: %w", rec.Kind(), rec.GetID(), err)
	}
	return nil
}

func (s *Store) Delete(id int, kind record.Kind) error {
	model, err := newRowModel(kind)
	if err != nil {
		return err
	}

	res := s.db.Delete(model, id)
	if res.Error != nil {
		s.log.Error("Failed to delete record", "kind", kind, "id", id, "error", res.Error)
		return fmt.Errorf("delete %s %d: %w", kind, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	s.log.Debug("Record deleted", "kind", kind, "id", id)
	return nil
}

func (s *Store) Scan(kind record.Kind, pred func(record.Record) bool) ([]record.Record, error) {
	switch kind {
	case record.KindUser:
		return scanRows[migrations.UserRow](s, kind, pred)
	case record.KindEvent:
		return scanRows[migrations.EventRow](s, kind, pred)
	case record.KindAttendance:
		return scanRows[migrations.AttendanceRow](s, kind, pred)
	case record.KindSurvey:
		return scanRows[migrations.SurveyRow](s, kind, pred)
	case record.KindQuestion:
		return scanRows[migrations.QuestionRow](s, kind, pred)
	case record.KindChoice:
		return scanRows[migrations.ChoiceRow](s, kind, pred)
	case record.KindResponse:
		return scanRows[migrations.ResponseRow](s, kind, pred)
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
}

func scanRows[R any](s *Store, kind record.Kind, pred func(record.Record) bool) ([]record.Record, error) {
	var rows []R
	if err := s.db.Order("id ASC").Find(&rows).Error; err != nil {
		s.log.Error("Failed to scan records", "kind", kind, "error", err)
		return nil, fmt.Errorf("scan %s: %w", kind, err)
	}

	var out []record.Record
	for i := range rows {
		rec, err := fromRow(&rows[i])
		if err != nil {
			return nil, err
		}
		if pred == nil || pred(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		s.log.Error("Failed to close database connection", "error", err)
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	s.log.Info("Database connection closed")
	return nil
}
