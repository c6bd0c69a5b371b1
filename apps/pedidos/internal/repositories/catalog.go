package repositories

import (
	"context"
	"fmt"
	"sync"

	"pedidos.sainthonore.com/apps/pedidos/internal/models"
)

const (
	DefaultProvider = "Proveedor1"
	DefaultTenant   = "brand1"
)

// RawRow is one ingested source row before date normalization. Optional
// source columns are already resolved to their defaults by the Source.
type RawRow struct {
	// Row is the physical 1-based row number in the source, so load
	// errors point at the exact line a planner has to fix. For
	// spreadsheets this counts the header row.
	Row      int
	Provider string
	Tenant   string
	Brand    string
	Country  string
	Date     string
}

// Source delivers the raw deadline rows, either from the embedded
// reference table or from an external spreadsheet.
type Source interface {
	Rows() ([]RawRow, error)
}

type LoadError struct {
	// Row is the physical 1-based row number in the source, 0 when the
	// failure is not tied to a single row.
	Row int
	Err error
}

func (e *LoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("loading deadline catalog: row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("loading deadline catalog: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// CatalogRepository owns the canonical deadline list. The source is
// read at most once per process; afterwards every caller gets the
// cached slice. The data is reference data, refreshed by restarting.
type CatalogRepository struct {
	source Source

	mu     sync.Mutex
	loaded bool
	events []models.DeadlineEvent
}

// Load returns all deadline events. Rows with a blank date are skipped
// (deadline not yet set); a malformed non-blank date fails the whole
// load. A failed load is not cached, so a later call reads the source
// again.
func (repo *CatalogRepository) Load(
	_ context.Context,
) ([]models.DeadlineEvent, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.loaded {
		return repo.events, nil
	}

	rows, err := repo.source.Rows()
	if err != nil {
		return nil, err
	}

	events := make([]models.DeadlineEvent, 0, len(rows))
	for _, row := range rows {
		if row.Date == "" {
			continue
		}

		date, err := ParseDeadlineDate(row.Date)
		if err != nil {
			return nil, &LoadError{Row: row.Row, Err: err}
		}

		events = append(events, models.DeadlineEvent{
			Provider: row.Provider,
			Brand:    row.Brand,
			Country:  row.Country,
			Tenant:   row.Tenant,
			Date:     date,
		})
	}

	repo.events = events
	repo.loaded = true

	return repo.events, nil
}
