package repository

import (
	"testing"
	"time"

	"booking-directory/database"
	"booking-directory/internal/domain/genres"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepo gives each test its own in-memory store with the production
// migrations applied and foreign keys enforced.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second pool connection would see a different :memory: database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return New(db)
}

func venueInput(name, city, state string) VenueInput {
	return VenueInput{
		Name:   name,
		City:   city,
		State:  state,
		Genres: genres.List{},
	}
}

func artistInput(name, city, state string) ArtistInput {
	return ArtistInput{
		Name:   name,
		City:   city,
		State:  state,
		Genres: genres.List{},
	}
}

func mustCreateVenue(t *testing.T, r *Repository, in VenueInput) uint {
	t.Helper()
	id, err := r.CreateVenue(in)
	require.NoError(t, err)
	return id
}

func mustCreateArtist(t *testing.T, r *Repository, in ArtistInput) uint {
	t.Helper()
	id, err := r.CreateArtist(in)
	require.NoError(t, err)
	return id
}

func mustCreateShow(t *testing.T, r *Repository, venueID, artistID uint, start time.Time) uint {
	t.Helper()
	id, err := r.CreateShow(ShowInput{VenueID: venueID, ArtistID: artistID, StartTime: start})
	require.NoError(t, err)
	return id
}
