package venues

import (
	"time"

	"booking-directory/internal/domain/genres"
	"booking-directory/internal/domain/shows"
)

type Venue struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"not null;index" json:"name"`
	City    string `gorm:"type:varchar(120)" json:"city"`
	State   string `gorm:"type:varchar(120)" json:"state"`
	Address string `gorm:"type:varchar(120)" json:"address"`
	Phone   string `gorm:"type:varchar(120)" json:"phone"`

	ImageLink    string `gorm:"type:varchar(500)" json:"image_link"`
	FacebookLink string `gorm:"type:varchar(120)" json:"facebook_link"`
	Website      string `gorm:"type:varchar(500)" json:"website"`

	Genres genres.List `gorm:"type:text;not null" json:"genres"`

	SeekingTalent      bool   `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string `gorm:"type:varchar(500)" json:"seeking_description"`

	// Deleting a venue takes its shows with it.
	Shows []shows.Show `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
