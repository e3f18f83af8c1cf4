package database

import (
	"log"

	"gorm.io/gorm"

	"roombooking/internal/repository"
)

// Migrate brings the schema up to date. On Postgres it additionally installs
// an exclusion constraint so that two non-cancelled bookings on the same room
// can never hold overlapping [start, end) ranges, regardless of how many
// writers race through the overlap pre-check. SQLite (dev/test) has no
// equivalent; there the pre-check alone guards single-writer use.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	log.Println("Installing booking overlap exclusion constraint...")
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
		`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_no_overlap`,
		`ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
			EXCLUDE USING gist (
				room_id WITH =,
				tstzrange(start_time, end_time, '[)') WITH &&
			) WHERE (NOT is_cancelled)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
