// Package store loads the app records served by the API. Records are read
// once at startup and never change afterwards.
package store

import (
	"context"
	"fmt"

	"playstore/shared"
)

// Source supplies the raw app records in their original order.
type Source interface {
	Load(ctx context.Context) ([]shared.AppRecord, error)
}

// Catalog is the immutable, process-wide record collection.
type Catalog struct {
	records []shared.AppRecord
}

// NewCatalog loads src and checks that every record is usable.
func NewCatalog(ctx context.Context, src Source) (*Catalog, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i, r := range records {
		if err := validateRecord(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return &Catalog{records: records}, nil
}

// Records returns the collection. Callers must treat it as read-only.
func (c *Catalog) Records() []shared.AppRecord {
	return c.records
}

func (c *Catalog) Len() int {
	return len(c.records)
}

func validateRecord(r shared.AppRecord) error {
	if r.App == "" {
		return fmt.Errorf("missing App")
	}
	if len(shared.SplitGenres(r.Genres)) == 0 {
		return fmt.Errorf("app %q: missing Genres", r.App)
	}
	return nil
}
