package shows

import "time"

// Show is a scheduled pairing of one venue and one artist. Both foreign
// keys are required; the constraints live on the owning side of each
// association (see venues.Venue and artists.Artist).
type Show struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	VenueID  uint `gorm:"not null;index" json:"venue_id"`
	ArtistID uint `gorm:"not null;index" json:"artist_id"`

	StartTime time.Time `gorm:"not null;index" json:"start_time"`

	CreatedAt time.Time `json:"created_at"`
}
