package storage

import (
	"fmt"

	"github.com/gravadigital/poorganiser-api/internal/config"
)

// BackendType represents the type of storage backend
type BackendType string

const (
	// BackendMemory keeps all records in process memory
	BackendMemory BackendType = "memory"
	// BackendSQLite persists records to a local SQLite database
	BackendSQLite BackendType = "sqlite"
	// BackendPostgres persists records to PostgreSQL
	BackendPostgres BackendType = "postgres"
)

// Opener constructs a Store from configuration. Backend packages register
// their constructor here rather than being imported by this package, since
// they already import storage for the contract.
type Opener func(cfg *config.Config) (Store, error)

// Factory creates stores for a configured backend type
type Factory struct {
	backendType BackendType
	openers     map[BackendType]Opener
}

// NewFactory creates a new storage factory
func NewFactory(backendType BackendType) *Factory {
	return &Factory{
		backendType: backendType,
		openers:     map[BackendType]Opener{},
	}
}

// Register binds a backend type to its constructor
func (f *Factory) Register(t BackendType, open Opener) {
	f.openers[t] = open
}

// CreateStore creates a store for the configured backend type
func (f *Factory) CreateStore(cfg *config.Config) (Store, error) {
	open, ok := f.openers[f.backendType]
	if !ok {
		return nil, fmt.Errorf("unsupported storage backend: %s", f.backendType)
	}
	return open(cfg)
}

// SupportedBackends returns the backend types this build knows about
func SupportedBackends() []BackendType {
	return []BackendType{
		BackendMemory,
		BackendSQLite,
		BackendPostgres,
	}
}

// ValidateBackendType validates a backend type name
func ValidateBackendType(name string) (BackendType, error) {
	t := BackendType(name)
	for _, supported := range SupportedBackends() {
		if t == supported {
			return t, nil
		}
	}
	return "", fmt.Errorf("unsupported storage backend: %s. Supported backends: %v", name, SupportedBackends())
}
