// Package repository holds every read and write operation against the
// directory store. Operations take the store handle injected at
// construction; mutations run inside a transaction so a failure rolls the
// whole write back and the caller never observes a partial record.
package repository

import (
	"time"

	"booking-directory/internal/domain/shows"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB

	// now is swapped out by tests that pin the upcoming/past boundary.
	now func() time.Time
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// coerceCheckbox maps the raw "seeking" checkbox value to a bool. Checked
// boxes arrive as the literal string "y"; anything else, including an
// absent field, means false. Applied on both create and update paths.
func coerceCheckbox(raw string) bool {
	return raw == "y"
}

// ShowInfo is one show row annotated with the counterpart entity's fields.
// Venue lookups fill the artist side and vice versa.
type ShowInfo struct {
	ShowID uint `json:"show_id"`

	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`

	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`

	StartTime time.Time `json:"start_time"`
}

// splitByNow buckets shows into upcoming (strictly after now) and past
// (strictly before now). A show starting at the exact query instant lands
// in neither bucket.
func splitByNow(now time.Time, all []ShowInfo) (upcoming, past []ShowInfo) {
	upcoming = []ShowInfo{}
	past = []ShowInfo{}
	for _, s := range all {
		switch {
		case s.StartTime.After(now):
			upcoming = append(upcoming, s)
		case s.StartTime.Before(now):
			past = append(past, s)
		}
	}
	return upcoming, past
}

// upcomingShowCounts returns, keyed by the given foreign-key column, how
// many shows start strictly after now.
func (r *Repository) upcomingShowCounts(fkColumn string) (map[uint]int, error) {
	type countRow struct {
		ID uint
		N  int
	}
	var rows []countRow
	err := r.db.Model(&shows.Show{}).
		Select(fkColumn+" AS id, COUNT(*) AS n").
		Where("start_time > ?", r.now()).
		Group(fkColumn).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.ID] = row.N
	}
	return counts, nil
}
