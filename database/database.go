package database

import (
	"booking-directory/internal/domain/artists"
	"booking-directory/internal/domain/shows"
	"booking-directory/internal/domain/venues"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations. The returned
// handle is passed down into the repository layer; nothing holds it as
// package state.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logrus.Info("Connected and migrated successfully")
	return db, nil
}

// Migrate creates or updates the three directory tables. Exported so tests
// can run the same migration against a throwaway store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&venues.Venue{},
		&artists.Artist{},
		&shows.Show{},
	)
}
