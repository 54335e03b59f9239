package repository

import (
	"time"

	"booking-directory/internal/domain/shows"

	"gorm.io/gorm"
)

type ShowInput struct {
	VenueID   uint
	ArtistID  uint
	StartTime time.Time
}

// ShowRow is one denormalized row of the shows listing: the raw foreign
// keys plus the fields the listing displays inline.
type ShowRow struct {
	ID              uint      `json:"id"`
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ListAllShows returns every show joined with its venue name, artist name
// and artist image.
func (r *Repository) ListAllShows() ([]ShowRow, error) {
	var rows []ShowRow
	err := r.db.Model(&shows.Show{}).
		Select("shows.id, shows.venue_id, venues.name AS venue_name, shows.artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Order("shows.start_time").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []ShowRow{}
	}
	return rows, nil
}

// CreateShow inserts a new show. A venue_id or artist_id with no matching
// record is rejected by the store's foreign-key constraint and surfaces as
// an error here.
func (r *Repository) CreateShow(in ShowInput) (uint, error) {
	s := shows.Show{
		VenueID:   in.VenueID,
		ArtistID:  in.ArtistID,
		StartTime: in.StartTime,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&s).Error
	})
	if err != nil {
		return 0, err
	}
	return s.ID, nil
}
