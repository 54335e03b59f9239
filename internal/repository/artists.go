package repository

import (
	"errors"
	"strings"

	"booking-directory/internal/domain/artists"
	"booking-directory/internal/domain/genres"
	"booking-directory/internal/domain/shows"

	"gorm.io/gorm"
)

// ArtistInput mirrors VenueInput; SeekingVenue is the raw checkbox value.
type ArtistInput struct {
	Name               string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	Genres             genres.List
	SeekingVenue       string
	SeekingDescription string
}

func (in ArtistInput) record() artists.Artist {
	g := in.Genres
	if g == nil {
		g = genres.List{}
	}
	return artists.Artist{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		Genres:             g,
		SeekingVenue:       coerceCheckbox(in.SeekingVenue),
		SeekingDescription: in.SeekingDescription,
	}
}

// ArtistRef is one row of the unfiltered artist listing.
type ArtistRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ArtistSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type ArtistSearchResult struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

type ArtistDetail struct {
	artists.Artist
	UpcomingShows []ShowInfo `json:"upcoming_shows"`
	PastShows     []ShowInfo `json:"past_shows"`
}

// ListAllArtists returns every artist, id and name only.
func (r *Repository) ListAllArtists() ([]ArtistRef, error) {
	var refs []ArtistRef
	err := r.db.Model(&artists.Artist{}).
		Select("id, name").
		Order("name").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	if refs == nil {
		refs = []ArtistRef{}
	}
	return refs, nil
}

// SearchArtistsByName matches case-insensitively on substring containment.
// An empty term matches every artist.
func (r *Repository) SearchArtistsByName(term string) (ArtistSearchResult, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	var matched []artists.Artist
	err := r.db.Where("LOWER(name) LIKE ?", pattern).Order("name").Find(&matched).Error
	if err != nil {
		return ArtistSearchResult{}, err
	}

	counts, err := r.upcomingShowCounts("artist_id")
	if err != nil {
		return ArtistSearchResult{}, err
	}

	result := ArtistSearchResult{Count: len(matched), Data: []ArtistSummary{}}
	for _, a := range matched {
		result.Data = append(result.Data, ArtistSummary{
			ID:               a.ID,
			Name:             a.Name,
			NumUpcomingShows: counts[a.ID],
		})
	}
	return result, nil
}

// GetArtistByID loads an artist with its shows split into upcoming and
// past, each row denormalized with the hosting venue's name and image.
func (r *Repository) GetArtistByID(id uint) (ArtistDetail, error) {
	var a artists.Artist
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ArtistDetail{}, ErrNotFound
		}
		return ArtistDetail{}, err
	}

	var rows []ShowInfo
	err := r.db.Model(&shows.Show{}).
		Select("shows.id AS show_id, shows.venue_id, shows.artist_id, venues.name AS venue_name, venues.image_link AS venue_image_link, shows.start_time").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Where("shows.artist_id = ?", id).
		Order("shows.start_time").
		Scan(&rows).Error
	if err != nil {
		return ArtistDetail{}, err
	}

	detail := ArtistDetail{Artist: a}
	detail.UpcomingShows, detail.PastShows = splitByNow(r.now(), rows)
	return detail, nil
}

// CreateArtist inserts a new artist and returns its assigned id.
func (r *Repository) CreateArtist(in ArtistInput) (uint, error) {
	a := in.record()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&a).Error
	})
	if err != nil {
		return 0, err
	}
	return a.ID, nil
}

// UpdateArtist overwrites every mutable field of the identified artist,
// preserving its identity.
func (r *Repository) UpdateArtist(id uint, in ArtistInput) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing artists.Artist
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		a := in.record()
		a.ID = existing.ID
		a.CreatedAt = existing.CreatedAt
		return tx.Save(&a).Error
	})
}

// DeleteArtist removes the artist and its shows in one transaction, the
// same cascade policy venues get.
func (r *Repository) DeleteArtist(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artist_id = ?", id).Delete(&shows.Show{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&artists.Artist{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
