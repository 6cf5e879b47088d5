package seeder

import (
	"context"
	"fmt"
	"log"

	"intern-match/internal/database"
)

// Seeder fills a table group with demo data. Seeders are idempotent; running
// them against a populated database is a no-op.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

func RunAll(ctx context.Context, db database.DB, logger *log.Logger, seeders ...Seeder) error {
	for _, s := range seeders {
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
		if logger != nil {
			logger.Printf("seed | name=%s state=done", s.Name())
		}
	}
	return nil
}
