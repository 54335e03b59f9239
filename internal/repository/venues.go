package repository

import (
	"errors"
	"strings"

	"booking-directory/internal/domain/genres"
	"booking-directory/internal/domain/shows"
	"booking-directory/internal/domain/venues"

	"gorm.io/gorm"
)

// VenueInput carries every mutable venue field. SeekingTalent is the raw
// checkbox value; coercion happens here, not in the handlers.
type VenueInput struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	Genres             genres.List
	SeekingTalent      string
	SeekingDescription string
}

func (in VenueInput) record() venues.Venue {
	g := in.Genres
	if g == nil {
		g = genres.List{}
	}
	return venues.Venue{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Address:            in.Address,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		Genres:             g,
		SeekingTalent:      coerceCheckbox(in.SeekingTalent),
		SeekingDescription: in.SeekingDescription,
	}
}

// VenueSummary is one row of a grouped or searched venue listing.
type VenueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueArea is one (city, state) bucket of the grouped listing.
type VenueArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueSearchResult is the matching set plus its cardinality.
type VenueSearchResult struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

// VenueDetail is a venue with its shows bucketed around the query instant.
type VenueDetail struct {
	venues.Venue
	UpcomingShows []ShowInfo `json:"upcoming_shows"`
	PastShows     []ShowInfo `json:"past_shows"`
}

// ListVenuesGroupedByLocation buckets every venue by its distinct
// (city, state) pair. Group and venue ordering is stable but not part of
// the contract.
func (r *Repository) ListVenuesGroupedByLocation() ([]VenueArea, error) {
	var all []venues.Venue
	if err := r.db.Order("state, city, name").Find(&all).Error; err != nil {
		return nil, err
	}

	counts, err := r.upcomingShowCounts("venue_id")
	if err != nil {
		return nil, err
	}

	areas := []VenueArea{}
	for _, v := range all {
		n := len(areas)
		if n == 0 || areas[n-1].City != v.City || areas[n-1].State != v.State {
			areas = append(areas, VenueArea{City: v.City, State: v.State})
			n++
		}
		areas[n-1].Venues = append(areas[n-1].Venues, VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}
	return areas, nil
}

// SearchVenuesByName matches case-insensitively on substring containment.
// An empty term matches every venue.
func (r *Repository) SearchVenuesByName(term string) (VenueSearchResult, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	var matched []venues.Venue
	err := r.db.Where("LOWER(name) LIKE ?", pattern).Order("name").Find(&matched).Error
	if err != nil {
		return VenueSearchResult{}, err
	}

	counts, err := r.upcomingShowCounts("venue_id")
	if err != nil {
		return VenueSearchResult{}, err
	}

	result := VenueSearchResult{Count: len(matched), Data: []VenueSummary{}}
	for _, v := range matched {
		result.Data = append(result.Data, VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}
	return result, nil
}

// GetVenueByID loads a venue with its shows split into upcoming and past,
// each row denormalized with the performing artist's name and image.
func (r *Repository) GetVenueByID(id uint) (VenueDetail, error) {
	var v venues.Venue
	if err := r.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VenueDetail{}, ErrNotFound
		}
		return VenueDetail{}, err
	}

	var rows []ShowInfo
	err := r.db.Model(&shows.Show{}).
		Select("shows.id AS show_id, shows.venue_id, shows.artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.venue_id = ?", id).
		Order("shows.start_time").
		Scan(&rows).Error
	if err != nil {
		return VenueDetail{}, err
	}

	detail := VenueDetail{Venue: v}
	detail.UpcomingShows, detail.PastShows = splitByNow(r.now(), rows)
	return detail, nil
}

// CreateVenue inserts a new venue and returns its assigned id.
func (r *Repository) CreateVenue(in VenueInput) (uint, error) {
	v := in.record()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&v).Error
	})
	if err != nil {
		return 0, err
	}
	return v.ID, nil
}

// UpdateVenue overwrites every mutable field of the identified venue. The
// record identity is re-asserted from the loaded row, never from input.
func (r *Repository) UpdateVenue(id uint, in VenueInput) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing venues.Venue
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		v := in.record()
		v.ID = existing.ID
		v.CreatedAt = existing.CreatedAt
		return tx.Save(&v).Error
	})
}

// DeleteVenue removes the venue and its shows in one transaction.
func (r *Repository) DeleteVenue(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&shows.Show{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&venues.Venue{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
