// Package backends wires every compiled-in storage backend into a factory.
// It exists as a separate package so that the storage package itself never
// imports its implementations.
package backends

import (
	"github.com/gravadigital/poorganiser-api/internal/config"
	"github.com/gravadigital/poorganiser-api/internal/storage"
	"github.com/gravadigital/poorganiser-api/internal/storage/memory"
	"github.com/gravadigital/poorganiser-api/internal/storage/postgres"
	"github.com/gravadigital/poorganiser-api/internal/storage/sqlite"
)

// NewFactory returns a factory with all backends registered
func NewFactory(t storage.BackendType) *storage.Factory {
	f := storage.NewFactory(t)
	f.Register(storage.BackendMemory, memory.Open)
	f.Register(storage.BackendSQLite, sqlite.Open)
	f.Register(storage.BackendPostgres, postgres.Open)
	return f
}

// Open creates the store named by the configuration's storage backend
func Open(cfg *config.Config) (storage.Store, error) {
	t, err := storage.ValidateBackendType(cfg.Storage.Backend)
	if err != nil {
		return nil, err
	}
	return NewFactory(t).CreateStore(cfg)
}
