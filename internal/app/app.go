package app

import (
	"fmt"

	"readerd/internal/store"
	"readerd/pkg/domain"
)

// Config holds runtime configuration for the core application.
type Config struct {
	DatabaseURL string
	Store       store.Store
}

// App is the core application service wiring storage and domain logic.
// One instance is built at process start and shared across requests.
type App struct {
	store store.Store
}

// New constructs the application with database-backed storage unless a
// store is injected (tests inject a memory store).
func New(cfg Config) (*App, error) {
	dataStore := cfg.Store
	if dataStore == nil {
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("database URL required")
		}
		var err error
		dataStore, err = store.NewGormStore(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("init postgres store: %w", err)
		}
	}
	return &App{store: dataStore}, nil
}

// CreateReader persists a new reader and returns it with its generated id.
func (a *App) CreateReader(name, email string) (domain.Reader, error) {
	return a.store.CreateReader(name, email)
}

// ListReaders returns every persisted reader.
func (a *App) ListReaders() ([]domain.Reader, error) {
	return a.store.ListReaders()
}

// GetReader retrieves a reader by id.
func (a *App) GetReader(id int64) (domain.Reader, bool, error) {
	return a.store.GetReader(id)
}

// UpdateReader applies a partial update and reports the affected-row count.
func (a *App) UpdateReader(id int64, fields domain.ReaderUpdate) (int64, error) {
	return a.store.UpdateReader(id, fields)
}

// DeleteReader removes a reader and reports the affected-row count.
func (a *App) DeleteReader(id int64) (int64, error) {
	return a.store.DeleteReader(id)
}
