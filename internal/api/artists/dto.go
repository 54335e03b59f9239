package artists

import (
	"booking-directory/internal/domain/genres"
	"booking-directory/internal/repository"
	"booking-directory/internal/web"
)

// ArtistForm is the form-encoded body of the create and edit submissions.
type ArtistForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	Website            string   `form:"website"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f ArtistForm) input() repository.ArtistInput {
	return repository.ArtistInput{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		Genres:             genres.List(f.Genres),
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

type showView struct {
	VenueID        uint
	VenueName      string
	VenueImageLink string
	StartTime      string
}

func toShowViews(rows []repository.ShowInfo) []showView {
	out := make([]showView, 0, len(rows))
	for _, s := range rows {
		out = append(out, showView{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      web.FormatTime(s.StartTime),
		})
	}
	return out
}
