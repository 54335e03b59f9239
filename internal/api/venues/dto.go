package venues

import (
	"booking-directory/internal/domain/genres"
	"booking-directory/internal/repository"
	"booking-directory/internal/web"
)

// VenueForm is the form-encoded body of the create and edit submissions.
// Every field is present on both forms; edits are full overwrites, so
// nothing here is optional on the update path.
type VenueForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Address            string   `form:"address"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	Website            string   `form:"website"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f VenueForm) input() repository.VenueInput {
	return repository.VenueInput{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		Genres:             genres.List(f.Genres),
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

type showView struct {
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

func toShowViews(rows []repository.ShowInfo) []showView {
	out := make([]showView, 0, len(rows))
	for _, s := range rows {
		out = append(out, showView{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       web.FormatTime(s.StartTime),
		})
	}
	return out
}
