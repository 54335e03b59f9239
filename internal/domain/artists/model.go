package artists

import (
	"time"

	"booking-directory/internal/domain/genres"
	"booking-directory/internal/domain/shows"
)

type Artist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"not null;index" json:"name"`
	City  string `gorm:"type:varchar(120)" json:"city"`
	State string `gorm:"type:varchar(120)" json:"state"`
	Phone string `gorm:"type:varchar(120)" json:"phone"`

	ImageLink    string `gorm:"type:varchar(500)" json:"image_link"`
	FacebookLink string `gorm:"type:varchar(120)" json:"facebook_link"`
	Website      string `gorm:"type:varchar(500)" json:"website"`

	Genres genres.List `gorm:"type:text;not null" json:"genres"`

	SeekingVenue       bool   `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string `gorm:"type:varchar(500)" json:"seeking_description"`

	// Same cascade policy as venues, applied symmetrically.
	Shows []shows.Show `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
