// Package seeders populates a fresh database with demo data for local
// development. Seeding is idempotent: a seeder that finds its rows already
// present does nothing.
package seeders

import (
	"fmt"

	"gorm.io/gorm"
)

// Seeder fills one slice of the database.
type Seeder interface {
	Name() string
	Run(db *gorm.DB) error
}

var registry []Seeder

// Register adds a seeder to the global registry. Seeders run in
// registration order, so list dependencies first.
func Register(s Seeder) {
	registry = append(registry, s)
}

// RunAll executes every registered seeder against db.
func RunAll(db *gorm.DB) error {
	for _, s := range registry {
		fmt.Printf("  Seeding: %s\n", s.Name())
		if err := s.Run(db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
	}
	return nil
}
